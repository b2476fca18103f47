package api

import (
	"context"
	"net/http"

	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the account registration body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and register: a bearer token plus the
// authenticated profile.
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, "", http.MethodPost, "/auth/login", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, "", http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, token, http.MethodPost, "/auth/logout", nil, nil)
}

// Me fetches the profile for the token's user. A 401 here means the token
// is no longer valid and the session must be dropped.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, token, http.MethodGet, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
