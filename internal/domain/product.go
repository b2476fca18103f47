package domain

type StockLevel string

const (
	StockLevelInStock  StockLevel = "IN_STOCK"
	StockLevelLowStock StockLevel = "LOW_STOCK"
	StockLevelOutStock StockLevel = "OUT_OF_STOCK"
)

// Label returns the user-facing stock label.
func (l StockLevel) Label() string {
	switch l {
	case StockLevelLowStock:
		return "Low Stock"
	case StockLevelOutStock:
		return "Out of Stock"
	default:
		return "In Stock"
	}
}

type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	CategoryID     string    `json:"category_id"`
	Category       *Category `json:"category,omitempty"`
	Price          int64     `json:"price"` // weekly rental price in rupiah
	Quantity       int       `json:"quantity"`
	QuantityAlert  int       `json:"quantity_alert"`
	IsRentable     bool      `json:"is_rentable"`
	Picture        string    `json:"picture,omitempty"`
	Description    string    `json:"description,omitempty"`
	Specifications string    `json:"specifications,omitempty"`
	Source         string    `json:"source,omitempty"`
	DateArrival    string    `json:"date_arrival,omitempty"`
	CreatedOn      string    `json:"created_on"`
	UpdatedOn      string    `json:"updated_on"`
}

// StockLevel classifies the quantity against the low-stock alert threshold.
// A quantity exactly at the threshold counts as low stock.
func (p *Product) StockLevel() StockLevel {
	if p.Quantity <= 0 {
		return StockLevelOutStock
	}
	if p.Quantity <= p.QuantityAlert {
		return StockLevelLowStock
	}
	return StockLevelInStock
}
