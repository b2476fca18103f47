package service

import (
	"context"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

type userService struct {
	backend UserAPI
}

func NewUserService(backend UserAPI) UserService {
	return &userService{backend: backend}
}

func (s *userService) List(ctx context.Context, token string, q api.UserQuery) (*api.UserList, error) {
	return s.backend.ListUsers(ctx, token, q)
}

func (s *userService) Get(ctx context.Context, token, id string) (*domain.User, error) {
	user, err := s.backend.GetUser(ctx, token, id)
	if err != nil {
		return nil, err
	}
	for i := range user.Orders {
		user.Orders[i].OrderStatus = user.Orders[i].OrderStatus.Normalize()
	}
	return user, nil
}
