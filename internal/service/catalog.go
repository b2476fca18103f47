package service

import (
	"context"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

type catalogService struct {
	products   ProductAPI
	categories CategoryAPI
	images     ImageAPI
}

func NewCatalogService(products ProductAPI, categories CategoryAPI, images ImageAPI) CatalogService {
	return &catalogService{
		products:   products,
		categories: categories,
		images:     images,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, token string, q api.ProductQuery) (*api.ProductList, error) {
	return s.products.ListProducts(ctx, token, q)
}

func (s *catalogService) GetProduct(ctx context.Context, token, id string) (*domain.Product, error) {
	return s.products.GetProduct(ctx, token, id)
}

func (s *catalogService) CreateProduct(ctx context.Context, token string, input api.ProductInput) (*domain.Product, error) {
	return s.products.CreateProduct(ctx, token, input)
}

func (s *catalogService) UpdateProduct(ctx context.Context, token, id string, input api.ProductInput) (*domain.Product, error) {
	return s.products.UpdateProduct(ctx, token, id, input)
}

func (s *catalogService) DeleteProduct(ctx context.Context, token, id string) error {
	return s.products.DeleteProduct(ctx, token, id)
}

func (s *catalogService) UploadProductImage(ctx context.Context, token, productID string, file FileUpload) (string, error) {
	return s.images.UploadProductImage(ctx, token, productID, file.Filename, file.Size, file.Content)
}

func (s *catalogService) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	return s.categories.ListCategories(ctx, token)
}

func (s *catalogService) CreateCategory(ctx context.Context, token string, input api.CategoryInput) (*domain.Category, error) {
	return s.categories.CreateCategory(ctx, token, input)
}

func (s *catalogService) UpdateCategory(ctx context.Context, token, id string, input api.CategoryInput) (*domain.Category, error) {
	return s.categories.UpdateCategory(ctx, token, id, input)
}

func (s *catalogService) DeleteCategory(ctx context.Context, token, id string) error {
	return s.categories.DeleteCategory(ctx, token, id)
}
