package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

// ProductQuery narrows product listings by search term, category slug and page.
type ProductQuery struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

func (q ProductQuery) encode() string {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// ProductList is a page of products with pagination metadata.
type ProductList struct {
	Products   []domain.Product  `json:"products"`
	Pagination domain.Pagination `json:"pagination"`
}

// ProductInput is the create/update body for a product.
type ProductInput struct {
	Name           string `json:"name"`
	Brand          string `json:"brand"`
	CategoryID     string `json:"category_id"`
	Price          int64  `json:"price"`
	Quantity       int    `json:"quantity"`
	QuantityAlert  int    `json:"quantity_alert"`
	IsRentable     bool   `json:"is_rentable"`
	Description    string `json:"description,omitempty"`
	Specifications string `json:"specifications,omitempty"`
	Source         string `json:"source,omitempty"`
	DateArrival    string `json:"date_arrival,omitempty"`
}

func (c *Client) ListProducts(ctx context.Context, token string, q ProductQuery) (*ProductList, error) {
	var out ProductList
	if err := c.do(ctx, token, http.MethodGet, "/products"+q.encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProduct(ctx context.Context, token, id string) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, token, http.MethodGet, "/products/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, input ProductInput) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, token, http.MethodPost, "/products", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, input ProductInput) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, token, http.MethodPut, "/products/"+id, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/products/"+id, nil, nil)
}
