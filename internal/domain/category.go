package domain

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"product_count"`
	CreatedOn    string `json:"created_on"`
}

// Deletable reports whether the delete control should be offered. The server
// blocks deletion of non-empty categories regardless.
func (c *Category) Deletable() bool {
	return c.ProductCount == 0
}
