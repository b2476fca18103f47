package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

// OrderQuery narrows rental listings by status and page.
type OrderQuery struct {
	Status   domain.OrderStatus
	Page     int
	PageSize int
}

func (q OrderQuery) encode() string {
	values := url.Values{}
	if q.Status != "" {
		values.Set("status", string(q.Status))
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

// OrderList is a page of rental orders with pagination metadata.
type OrderList struct {
	Orders     []domain.Order    `json:"orders"`
	Pagination domain.Pagination `json:"pagination"`
}

// OrderInput is the checkout submission body. Dates are yyyy-mm-dd.
type OrderInput struct {
	Identification      string `json:"identification"`
	Phone               string `json:"phone"`
	Notes               string `json:"notes,omitempty"`
	CartID              string `json:"cart_id"`
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	IdentificationImage string `json:"identification_image"`
}

// ListAllOrders fetches every rental order. Admin only; the backend rejects
// other callers.
func (c *Client) ListAllOrders(ctx context.Context, token string, q OrderQuery) (*OrderList, error) {
	var out OrderList
	if err := c.do(ctx, token, http.MethodGet, "/rent"+q.encode(), nil, &out); err != nil {
		return nil, err
	}
	normalizeOrders(out.Orders)
	return &out, nil
}

// ListMyOrders fetches the caller's own rental orders.
func (c *Client) ListMyOrders(ctx context.Context, token string, q OrderQuery) (*OrderList, error) {
	var out OrderList
	if err := c.do(ctx, token, http.MethodGet, "/rent/my"+q.encode(), nil, &out); err != nil {
		return nil, err
	}
	normalizeOrders(out.Orders)
	return &out, nil
}

func (c *Client) GetOrder(ctx context.Context, token, id string) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, token, http.MethodGet, "/rent/"+id, nil, &out); err != nil {
		return nil, err
	}
	out.OrderStatus = out.OrderStatus.Normalize()
	return &out, nil
}

// CreateOrder converts the cart into a rental order. The server empties the
// cart on success.
func (c *Client) CreateOrder(ctx context.Context, token string, input OrderInput) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, token, http.MethodPost, "/rent", input, &out); err != nil {
		return nil, err
	}
	out.OrderStatus = out.OrderStatus.Normalize()
	return &out, nil
}

// UpdateOrderStatus requests a rental status transition. The server is the
// sole judge of whether the transition is legal.
func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error {
	body := struct {
		OrderStatus domain.OrderStatus `json:"order_status"`
	}{OrderStatus: status}
	return c.do(ctx, token, http.MethodPut, "/orders/"+orderID+"/status", body, nil)
}

// UpdatePaymentStatus requests a payment status transition.
func (c *Client) UpdatePaymentStatus(ctx context.Context, token, orderID string, status domain.PaymentStatus) error {
	body := struct {
		PaymentStatus domain.PaymentStatus `json:"payment_status"`
	}{PaymentStatus: status}
	return c.do(ctx, token, http.MethodPut, "/orders/"+orderID+"/status", body, nil)
}

func normalizeOrders(orders []domain.Order) {
	for i := range orders {
		orders[i].OrderStatus = orders[i].OrderStatus.Normalize()
	}
}
