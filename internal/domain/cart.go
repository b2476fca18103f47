package domain

// CartItem pairs a product with a requested quantity. Quantity is bounded by
// product stock at display time; the server re-validates on every mutation.
type CartItem struct {
	ID        string   `json:"id"`
	ProductID string   `json:"product_id"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
}

// Cart is the per-user staging collection for a rental request. It exists
// implicitly per user on the server; the client only ever mirrors it.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedOn string     `json:"updated_on"`
}

func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}

// TotalQuantity sums item quantities across the cart.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}
