package service

import (
	"context"
	"io"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

// The interfaces below describe the slice of the backend API each service
// consumes. *api.Client satisfies all of them; tests substitute mocks.

type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*domain.User, error)
}

type ProductAPI interface {
	ListProducts(ctx context.Context, token string, q api.ProductQuery) (*api.ProductList, error)
	GetProduct(ctx context.Context, token, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, token string, input api.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, token, id string, input api.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
}

type CategoryAPI interface {
	ListCategories(ctx context.Context, token string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, token string, input api.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, token, id string, input api.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error
}

type CartAPI interface {
	GetCart(ctx context.Context, token string) (*domain.Cart, error)
	AddToCart(ctx context.Context, token, productID string, quantity int) error
	UpdateCartItem(ctx context.Context, token, itemID string, quantity int) error
	RemoveCartItem(ctx context.Context, token, itemID string) error
	ClearCart(ctx context.Context, token string) error
}

type RentAPI interface {
	ListAllOrders(ctx context.Context, token string, q api.OrderQuery) (*api.OrderList, error)
	ListMyOrders(ctx context.Context, token string, q api.OrderQuery) (*api.OrderList, error)
	GetOrder(ctx context.Context, token, id string) (*domain.Order, error)
	CreateOrder(ctx context.Context, token string, input api.OrderInput) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, token, orderID string, status domain.PaymentStatus) error
}

type ImageAPI interface {
	UploadRentDocument(ctx context.Context, token, orderID string, doc domain.DocType, filename string, size int64, file io.Reader) (string, error)
	UploadTempIdentification(ctx context.Context, token, filename string, size int64, file io.Reader) (string, error)
	UploadProductImage(ctx context.Context, token, productID, filename string, size int64, file io.Reader) (string, error)
	UpdateRentImagePath(ctx context.Context, token, orderID, path string) error
}

type UserAPI interface {
	ListUsers(ctx context.Context, token string, q api.UserQuery) (*api.UserList, error)
	GetUser(ctx context.Context, token, id string) (*domain.User, error)
}
