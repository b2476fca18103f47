package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

// MockAuthAPI
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.AuthResponse), args.Error(1)
}
func (m *MockAuthAPI) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.AuthResponse), args.Error(1)
}
func (m *MockAuthAPI) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
func (m *MockAuthAPI) Me(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockCartAPI
type MockCartAPI struct {
	mock.Mock
}

func (m *MockCartAPI) GetCart(ctx context.Context, token string) (*domain.Cart, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}
func (m *MockCartAPI) AddToCart(ctx context.Context, token, productID string, quantity int) error {
	args := m.Called(ctx, token, productID, quantity)
	return args.Error(0)
}
func (m *MockCartAPI) UpdateCartItem(ctx context.Context, token, itemID string, quantity int) error {
	args := m.Called(ctx, token, itemID, quantity)
	return args.Error(0)
}
func (m *MockCartAPI) RemoveCartItem(ctx context.Context, token, itemID string) error {
	args := m.Called(ctx, token, itemID)
	return args.Error(0)
}
func (m *MockCartAPI) ClearCart(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockRentAPI
type MockRentAPI struct {
	mock.Mock
}

func (m *MockRentAPI) ListAllOrders(ctx context.Context, token string, q api.OrderQuery) (*api.OrderList, error) {
	args := m.Called(ctx, token, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.OrderList), args.Error(1)
}
func (m *MockRentAPI) ListMyOrders(ctx context.Context, token string, q api.OrderQuery) (*api.OrderList, error) {
	args := m.Called(ctx, token, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.OrderList), args.Error(1)
}
func (m *MockRentAPI) GetOrder(ctx context.Context, token, id string) (*domain.Order, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockRentAPI) CreateOrder(ctx context.Context, token string, input api.OrderInput) (*domain.Order, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockRentAPI) UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error {
	args := m.Called(ctx, token, orderID, status)
	return args.Error(0)
}
func (m *MockRentAPI) UpdatePaymentStatus(ctx context.Context, token, orderID string, status domain.PaymentStatus) error {
	args := m.Called(ctx, token, orderID, status)
	return args.Error(0)
}

// MockImageAPI
type MockImageAPI struct {
	mock.Mock
}

func (m *MockImageAPI) UploadRentDocument(ctx context.Context, token, orderID string, doc domain.DocType, filename string, size int64, file io.Reader) (string, error) {
	args := m.Called(ctx, token, orderID, doc, filename, size, file)
	return args.String(0), args.Error(1)
}
func (m *MockImageAPI) UploadTempIdentification(ctx context.Context, token, filename string, size int64, file io.Reader) (string, error) {
	args := m.Called(ctx, token, filename, size, file)
	return args.String(0), args.Error(1)
}
func (m *MockImageAPI) UploadProductImage(ctx context.Context, token, productID, filename string, size int64, file io.Reader) (string, error) {
	args := m.Called(ctx, token, productID, filename, size, file)
	return args.String(0), args.Error(1)
}
func (m *MockImageAPI) UpdateRentImagePath(ctx context.Context, token, orderID, path string) error {
	args := m.Called(ctx, token, orderID, path)
	return args.Error(0)
}

// MockProductAPI
type MockProductAPI struct {
	mock.Mock
}

func (m *MockProductAPI) ListProducts(ctx context.Context, token string, q api.ProductQuery) (*api.ProductList, error) {
	args := m.Called(ctx, token, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.ProductList), args.Error(1)
}
func (m *MockProductAPI) GetProduct(ctx context.Context, token, id string) (*domain.Product, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductAPI) CreateProduct(ctx context.Context, token string, input api.ProductInput) (*domain.Product, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductAPI) UpdateProduct(ctx context.Context, token, id string, input api.ProductInput) (*domain.Product, error) {
	args := m.Called(ctx, token, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductAPI) DeleteProduct(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}
