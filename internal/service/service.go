package service

import (
	"context"
	"io"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

// FileUpload is a file received from the browser, size-checked before any
// network transfer.
type FileUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
}

type SessionService interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, name, email, password string) (*Session, error)
	Logout(ctx context.Context, sess *Session) error
	Refresh(ctx context.Context, sess *Session) error
}

type CartService interface {
	Get(ctx context.Context, token string) (*domain.Cart, error)
	Add(ctx context.Context, token, productID string, quantity int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, token, itemID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, token, itemID string) (*domain.Cart, error)
	Clear(ctx context.Context, token string) (*domain.Cart, error)
}

type RentalService interface {
	ListAll(ctx context.Context, token string, q api.OrderQuery) (*api.OrderList, error)
	ListMine(ctx context.Context, token string, q api.OrderQuery) (*api.OrderList, error)
	Get(ctx context.Context, token, orderID string) (*domain.Order, error)
	Perform(ctx context.Context, token, orderID string, action Action) (*domain.Order, error)
	UploadDocument(ctx context.Context, token, orderID string, doc domain.DocType, file FileUpload) (*domain.Order, error)
}

type CheckoutService interface {
	DefaultForm() CheckoutForm
	Validate(cart *domain.Cart, form CheckoutForm, file *FileUpload) []FieldError
	Submit(ctx context.Context, token string, cart *domain.Cart, form CheckoutForm, file FileUpload) (*domain.Order, error)
}

type CatalogService interface {
	ListProducts(ctx context.Context, token string, q api.ProductQuery) (*api.ProductList, error)
	GetProduct(ctx context.Context, token, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, token string, input api.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, token, id string, input api.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
	UploadProductImage(ctx context.Context, token, productID string, file FileUpload) (string, error)

	ListCategories(ctx context.Context, token string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, token string, input api.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, token, id string, input api.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error
}

type UserService interface {
	List(ctx context.Context, token string, q api.UserQuery) (*api.UserList, error)
	Get(ctx context.Context, token, id string) (*domain.User, error)
}

type DashboardService interface {
	ForUser(ctx context.Context, sess *Session) (*Dashboard, error)
	Prune() int
}
