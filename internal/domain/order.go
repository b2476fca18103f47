package domain

type OrderStatus string

const (
	OrderStatusWaiting   OrderStatus = "WAITING"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusOnRent    OrderStatus = "ONRENT"
	OrderStatusActive    OrderStatus = "ACTIVE" // older API responses use ACTIVE for ONRENT
	OrderStatusOverdue   OrderStatus = "OVERDUE"
	OrderStatusReturned  OrderStatus = "RETURNED"
	OrderStatusRejected  OrderStatus = "REJECTED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Normalize collapses the ACTIVE alias into ONRENT so the rest of the
// client only ever reasons about one spelling.
func (s OrderStatus) Normalize() OrderStatus {
	if s == OrderStatusActive {
		return OrderStatusOnRent
	}
	return s
}

// Terminal reports whether no further status transitions exist.
func (s OrderStatus) Terminal() bool {
	switch s.Normalize() {
	case OrderStatusReturned, OrderStatusRejected, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

type DocType string

const (
	DocTypeIdentification DocType = "identification"
	DocTypeBefore         DocType = "before"
	DocTypeAfter          DocType = "after"
)

// OrderProduct is a rental line item. Price is the per-week price in rupiah
// captured from the product at order creation time; cost calculations use
// this snapshot, not the live product price.
type OrderProduct struct {
	ID        string   `json:"id"`
	ProductID string   `json:"product_id"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
	Price     int64    `json:"price"`
}

// Order is a rental request with its full lifecycle state. Every field is
// server-owned; the client re-reads the order after each mutation instead of
// computing new state locally.
type Order struct {
	ID                  string         `json:"id"`
	UserID              string         `json:"user_id"`
	User                *User          `json:"user,omitempty"`
	Identification      string         `json:"identification"`
	Phone               string         `json:"phone"`
	Notes               string         `json:"notes"`
	StartDate           string         `json:"start_date"`
	EndDate             string         `json:"end_date"`
	OrderStatus         OrderStatus    `json:"order_status"`
	PaymentStatus       PaymentStatus  `json:"payment_status"`
	Products            []OrderProduct `json:"products"`
	IdentificationImage string         `json:"identification_image,omitempty"`
	DocumentationBefore string         `json:"documentation_before,omitempty"`
	DocumentationAfter  string         `json:"documentation_after,omitempty"`
	CreatedOn           string         `json:"created_on"`
	UpdatedOn           string         `json:"updated_on"`
}

func (o *Order) HasBeforeDoc() bool {
	return o.DocumentationBefore != ""
}

func (o *Order) HasAfterDoc() bool {
	return o.DocumentationAfter != ""
}
