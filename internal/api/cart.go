package api

import (
	"context"
	"net/http"

	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

// GetCart fetches the caller's cart. The server creates one implicitly on
// first access.
func (c *Client) GetCart(ctx context.Context, token string) (*domain.Cart, error) {
	var out domain.Cart
	if err := c.do(ctx, token, http.MethodGet, "/cart", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddToCart stages quantity units of a product. The response body is not
// trusted; callers re-fetch the cart afterwards.
func (c *Client) AddToCart(ctx context.Context, token, productID string, quantity int) error {
	body := struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}{ProductID: productID, Quantity: quantity}
	return c.do(ctx, token, http.MethodPost, "/cart/add", body, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, token, itemID string, quantity int) error {
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}
	return c.do(ctx, token, http.MethodPut, "/cart/item/"+itemID, body, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, token, itemID string) error {
	return c.do(ctx, token, http.MethodDelete, "/cart/item/"+itemID, nil, nil)
}

func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, token, http.MethodDelete, "/cart/clear", nil, nil)
}
