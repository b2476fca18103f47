package web

import (
	"github.com/shopspring/decimal"

	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
	"github.com/reihansyahfitra/hes-vault-client/internal/service"
	"github.com/reihansyahfitra/hes-vault-client/internal/utils"
)

// ImageResolver turns relative upload paths into absolute image URLs.
type ImageResolver interface {
	ResolveImageURL(path string) string
}

// ActionView is one control the current viewer may trigger on an order.
type ActionView struct {
	Action      service.Action `json:"action"`
	Label       string         `json:"label"`
	Destructive bool           `json:"destructive"`
}

// OrderView decorates an order with everything its page needs: badges, the
// viewer's action set and resolved documentation URLs.
type OrderView struct {
	domain.Order
	StatusBadge            service.Badge `json:"status_badge"`
	PaymentBadge           service.Badge `json:"payment_badge"`
	Actions                []ActionView  `json:"actions"`
	IdentificationImageURL string        `json:"identification_image_url,omitempty"`
	BeforeDocURL           string        `json:"before_doc_url,omitempty"`
	AfterDocURL            string        `json:"after_doc_url,omitempty"`
}

func (h *Handlers) orderView(o *domain.Order, viewer domain.Team) OrderView {
	actions := service.LegalActions(o.OrderStatus, o.PaymentStatus, viewer, service.DocStateOf(o))
	views := make([]ActionView, len(actions))
	for i, a := range actions {
		views[i] = ActionView{Action: a, Label: a.Label(), Destructive: a.Destructive()}
	}
	return OrderView{
		Order:                  *o,
		StatusBadge:            service.StatusBadge(o.OrderStatus),
		PaymentBadge:           service.PaymentBadge(o.PaymentStatus),
		Actions:                views,
		IdentificationImageURL: h.images.ResolveImageURL(o.IdentificationImage),
		BeforeDocURL:           h.images.ResolveImageURL(o.DocumentationBefore),
		AfterDocURL:            h.images.ResolveImageURL(o.DocumentationAfter),
	}
}

func (h *Handlers) orderViews(orders []domain.Order, viewer domain.Team) []OrderView {
	views := make([]OrderView, len(orders))
	for i := range orders {
		views[i] = h.orderView(&orders[i], viewer)
	}
	return views
}

// ProductView decorates a product with its stock classification and
// resolved picture URL.
type ProductView struct {
	domain.Product
	StockLevel   domain.StockLevel `json:"stock_level"`
	StockLabel   string            `json:"stock_label"`
	PriceDisplay string            `json:"price_display"`
	PictureURL   string            `json:"picture_url,omitempty"`
}

func (h *Handlers) productView(p *domain.Product) ProductView {
	level := p.StockLevel()
	return ProductView{
		Product:      *p,
		StockLevel:   level,
		StockLabel:   level.Label(),
		PriceDisplay: utils.FormatRupiah(decimal.NewFromInt(p.Price)),
		PictureURL:   h.images.ResolveImageURL(p.Picture),
	}
}

func (h *Handlers) productViews(products []domain.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i := range products {
		views[i] = h.productView(&products[i])
	}
	return views
}

// CategoryView exposes whether the delete control may be offered.
type CategoryView struct {
	domain.Category
	Deletable bool `json:"deletable"`
}

func categoryViews(categories []domain.Category) []CategoryView {
	views := make([]CategoryView, len(categories))
	for i := range categories {
		views[i] = CategoryView{Category: categories[i], Deletable: categories[i].Deletable()}
	}
	return views
}

// CartItemView adds the resolved picture and line total to a cart item.
type CartItemView struct {
	domain.CartItem
	PictureURL       string `json:"picture_url,omitempty"`
	LineTotal        string `json:"line_total"`
	LineTotalDisplay string `json:"line_total_display"`
}

// CartView is the cart page model: items plus the weekly and full-duration
// totals for the selected rental length.
type CartView struct {
	ID                 string         `json:"id"`
	Items              []CartItemView `json:"items"`
	TotalQuantity      int            `json:"total_quantity"`
	DurationWeeks      int            `json:"duration_weeks"`
	WeeklyTotal        string         `json:"weekly_total"`
	WeeklyTotalDisplay string         `json:"weekly_total_display"`
	TotalCost          string         `json:"total_cost"`
	TotalCostDisplay   string         `json:"total_cost_display"`
}

func (h *Handlers) cartView(cart *domain.Cart, weeks int) CartView {
	if weeks < 1 {
		weeks = 1
	}
	weekly := service.WeeklyTotal(cart)
	total := service.TotalCost(cart, weeks)
	view := CartView{
		ID:                 cart.ID,
		Items:              make([]CartItemView, len(cart.Items)),
		TotalQuantity:      cart.TotalQuantity(),
		DurationWeeks:      weeks,
		WeeklyTotal:        weekly.String(),
		WeeklyTotalDisplay: utils.FormatRupiah(weekly),
		TotalCost:          total.String(),
		TotalCostDisplay:   utils.FormatRupiah(total),
	}
	for i, item := range cart.Items {
		itemView := CartItemView{CartItem: item}
		if item.Product != nil {
			itemView.PictureURL = h.images.ResolveImageURL(item.Product.Picture)
			single := domain.Cart{Items: []domain.CartItem{item}}
			line := service.WeeklyTotal(&single)
			itemView.LineTotal = line.String()
			itemView.LineTotalDisplay = utils.FormatRupiah(line)
		}
		view.Items[i] = itemView
	}
	return view
}

// userView marks administrators so the list can badge them.
type userView struct {
	domain.User
	Admin bool `json:"admin"`
}

func userViews(users []domain.User) []userView {
	views := make([]userView, len(users))
	for i := range users {
		views[i] = userView{User: users[i], Admin: users[i].IsAdmin()}
	}
	return views
}

// PageView is pagination metadata with the derived page count.
type PageView struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

func pageView(p domain.Pagination) PageView {
	return PageView{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages(),
	}
}
