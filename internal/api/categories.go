package api

import (
	"context"
	"net/http"

	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

// CategoryInput is the create/update body for a category.
type CategoryInput struct {
	Name string `json:"name"`
}

func (c *Client) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	var out struct {
		Categories []domain.Category `json:"categories"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, input CategoryInput) (*domain.Category, error) {
	var out domain.Category
	if err := c.do(ctx, token, http.MethodPost, "/categories", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, token, id string, input CategoryInput) (*domain.Category, error) {
	var out domain.Category
	if err := c.do(ctx, token, http.MethodPut, "/categories/"+id, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory is rejected server-side while the category still holds
// products; the view disables the control in that case as well.
func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/categories/"+id, nil, nil)
}
