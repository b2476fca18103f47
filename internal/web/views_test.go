package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
	"github.com/reihansyahfitra/hes-vault-client/internal/service"
)

type staticResolver struct{}

func (staticResolver) ResolveImageURL(path string) string {
	if path == "" {
		return ""
	}
	return "http://img.local" + path
}

func testHandlers() *Handlers {
	return &Handlers{images: staticResolver{}, maxUpload: 5 << 20}
}

func TestOrderView_ActionsFollowRole(t *testing.T) {
	h := testHandlers()
	order := &domain.Order{
		ID:            "o1",
		OrderStatus:   domain.OrderStatusWaiting,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}

	t.Run("regular viewer", func(t *testing.T) {
		view := h.orderView(order, domain.TeamRegular)
		require.Len(t, view.Actions, 1)
		assert.Equal(t, service.ActionCancelRequest, view.Actions[0].Action)
		assert.Equal(t, "Cancel Request", view.Actions[0].Label)
		assert.True(t, view.Actions[0].Destructive)
	})

	t.Run("admin viewer", func(t *testing.T) {
		view := h.orderView(order, domain.TeamAdministrator)
		require.Len(t, view.Actions, 2)
		assert.Equal(t, "Approve", view.Actions[0].Label)
		assert.Equal(t, "Reject", view.Actions[1].Label)
	})

	t.Run("badges and documentation urls", func(t *testing.T) {
		done := &domain.Order{
			ID:                  "o2",
			OrderStatus:         domain.OrderStatusOnRent,
			PaymentStatus:       domain.PaymentStatusPaid,
			DocumentationBefore: "/uploads/rent/o2/before.jpg",
		}
		view := h.orderView(done, domain.TeamRegular)
		assert.Equal(t, service.BadgeSuccess, view.StatusBadge)
		assert.Equal(t, service.BadgeSuccess, view.PaymentBadge)
		assert.Equal(t, "http://img.local/uploads/rent/o2/before.jpg", view.BeforeDocURL)
		assert.Empty(t, view.AfterDocURL)
	})
}

func TestProductView(t *testing.T) {
	h := testHandlers()
	p := &domain.Product{ID: "p1", Name: "Drill", Price: 55000, Quantity: 2, QuantityAlert: 3, Picture: "/uploads/product/p1.jpg"}

	view := h.productView(p)
	assert.Equal(t, domain.StockLevelLowStock, view.StockLevel)
	assert.Equal(t, "Low Stock", view.StockLabel)
	assert.Equal(t, "Rp55.000", view.PriceDisplay)
	assert.Equal(t, "http://img.local/uploads/product/p1.jpg", view.PictureURL)
}

func TestCategoryViews_Deletable(t *testing.T) {
	views := categoryViews([]domain.Category{
		{ID: "c1", Name: "Power Tools", ProductCount: 3},
		{ID: "c2", Name: "Empty", ProductCount: 0},
	})
	require.Len(t, views, 2)
	assert.False(t, views[0].Deletable)
	assert.True(t, views[1].Deletable)
}

func TestCartView_Totals(t *testing.T) {
	h := testHandlers()
	cart := &domain.Cart{
		ID: "cart-1",
		Items: []domain.CartItem{
			{ID: "i1", Quantity: 2, Product: &domain.Product{ID: "p1", Price: 25000}},
			{ID: "i2", Quantity: 1, Product: &domain.Product{ID: "p2", Price: 5000}},
		},
	}

	view := h.cartView(cart, 2)
	assert.Equal(t, 3, view.TotalQuantity)
	assert.Equal(t, 2, view.DurationWeeks)
	assert.Equal(t, "55000", view.WeeklyTotal)
	assert.Equal(t, "Rp55.000", view.WeeklyTotalDisplay)
	assert.Equal(t, "110000", view.TotalCost)
	assert.Equal(t, "Rp110.000", view.TotalCostDisplay)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "50000", view.Items[0].LineTotal)
	assert.Equal(t, "Rp50.000", view.Items[0].LineTotalDisplay)

	t.Run("weeks below one clamp to one", func(t *testing.T) {
		view := h.cartView(cart, 0)
		assert.Equal(t, 1, view.DurationWeeks)
		assert.Equal(t, "55000", view.TotalCost)
	})
}

func TestPageView(t *testing.T) {
	view := pageView(domain.Pagination{Page: 2, PageSize: 10, TotalItems: 31})
	assert.Equal(t, 2, view.Page)
	assert.Equal(t, 4, view.TotalPages)
}
