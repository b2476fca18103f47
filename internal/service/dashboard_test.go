package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

func adminSession() *Session {
	return &Session{Token: "tok", User: domain.User{ID: "admin-1", Team: domain.TeamAdministrator}}
}

func regularSession() *Session {
	return &Session{Token: "tok", User: domain.User{ID: "user-1", Team: domain.TeamRegular}}
}

func sampleOrders() *api.OrderList {
	return &api.OrderList{Orders: []domain.Order{
		{ID: "o1", OrderStatus: domain.OrderStatusWaiting, Products: []domain.OrderProduct{
			{ProductID: "p1", Quantity: 3, Product: &domain.Product{ID: "p1", Name: "Drill"}},
		}},
		{ID: "o2", OrderStatus: domain.OrderStatusActive, Products: []domain.OrderProduct{
			{ProductID: "p2", Quantity: 1, Product: &domain.Product{ID: "p2", Name: "Saw"}},
		}},
		{ID: "o3", OrderStatus: domain.OrderStatusOverdue, Products: []domain.OrderProduct{
			{ProductID: "p1", Quantity: 2, Product: &domain.Product{ID: "p1", Name: "Drill"}},
		}},
	}}
}

func TestDashboardService_ForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("admin dashboard aggregates all orders and stock", func(t *testing.T) {
		rentals := new(MockRentAPI)
		products := new(MockProductAPI)
		svc := NewDashboardService(rentals, products, time.Minute).(*dashboardService)

		rentals.On("ListAllOrders", ctx, "tok", api.OrderQuery{PageSize: aggregationPageSize}).
			Return(sampleOrders(), nil)
		products.On("ListProducts", ctx, "tok", api.ProductQuery{PageSize: aggregationPageSize}).
			Return(&api.ProductList{Products: []domain.Product{
				{ID: "p1", Quantity: 0, QuantityAlert: 2},
				{ID: "p2", Quantity: 1, QuantityAlert: 2},
				{ID: "p3", Quantity: 10, QuantityAlert: 2},
			}}, nil)

		dash, err := svc.ForUser(ctx, adminSession())
		require.NoError(t, err)
		assert.True(t, dash.Admin)
		assert.Equal(t, 1, dash.PendingApprovals)
		assert.Equal(t, 2, dash.ActiveRentals) // ACTIVE normalizes to ONRENT, plus OVERDUE
		assert.Equal(t, 1, dash.LowStockCount)
		assert.Equal(t, 1, dash.OutOfStockCount)
		require.Len(t, dash.TopProducts, 2)
		assert.Equal(t, TopProduct{ProductID: "p1", Name: "Drill", Quantity: 5}, dash.TopProducts[0])
	})

	t.Run("regular dashboard only reads own orders", func(t *testing.T) {
		rentals := new(MockRentAPI)
		products := new(MockProductAPI)
		svc := NewDashboardService(rentals, products, time.Minute)

		rentals.On("ListMyOrders", ctx, "tok", api.OrderQuery{PageSize: aggregationPageSize}).
			Return(sampleOrders(), nil)

		dash, err := svc.ForUser(ctx, regularSession())
		require.NoError(t, err)
		assert.False(t, dash.Admin)
		assert.Zero(t, dash.LowStockCount)
		products.AssertNotCalled(t, "ListProducts", ctx, "tok", api.ProductQuery{PageSize: aggregationPageSize})
	})

	t.Run("fresh dashboards come from the cache", func(t *testing.T) {
		rentals := new(MockRentAPI)
		products := new(MockProductAPI)
		svc := NewDashboardService(rentals, products, time.Minute)

		rentals.On("ListMyOrders", ctx, "tok", api.OrderQuery{PageSize: aggregationPageSize}).
			Return(sampleOrders(), nil).Once()

		first, err := svc.ForUser(ctx, regularSession())
		require.NoError(t, err)
		second, err := svc.ForUser(ctx, regularSession())
		require.NoError(t, err)
		assert.Same(t, first, second)
		rentals.AssertExpectations(t)
	})

	t.Run("stale cache triggers a rebuild", func(t *testing.T) {
		rentals := new(MockRentAPI)
		products := new(MockProductAPI)
		svc := NewDashboardService(rentals, products, time.Minute).(*dashboardService)

		now := time.Now()
		svc.now = func() time.Time { return now }
		rentals.On("ListMyOrders", ctx, "tok", api.OrderQuery{PageSize: aggregationPageSize}).
			Return(sampleOrders(), nil).Twice()

		first, err := svc.ForUser(ctx, regularSession())
		require.NoError(t, err)

		now = now.Add(2 * time.Minute)
		second, err := svc.ForUser(ctx, regularSession())
		require.NoError(t, err)
		assert.NotSame(t, first, second)
		rentals.AssertExpectations(t)
	})

	t.Run("superseded rebuild never overwrites the cache", func(t *testing.T) {
		rentals := new(MockRentAPI)
		products := new(MockProductAPI)
		svc := NewDashboardService(rentals, products, time.Minute).(*dashboardService)

		sess := regularSession()

		// Simulate a slow in-flight rebuild: bump the generation as a newer
		// request would, then complete the older build by hand.
		svc.mu.Lock()
		entry := &dashboardEntry{}
		svc.entries[sess.User.ID] = entry
		entry.gen++
		staleGen := entry.gen
		entry.gen++ // a newer rebuild started meanwhile
		svc.mu.Unlock()

		stale := &Dashboard{GeneratedAt: svc.now()}
		svc.mu.Lock()
		if current := svc.entries[sess.User.ID]; current == entry && entry.gen == staleGen {
			entry.dash = stale
		}
		svc.mu.Unlock()

		svc.mu.Lock()
		assert.Nil(t, entry.dash)
		svc.mu.Unlock()
	})

	t.Run("backend failure surfaces and caches nothing", func(t *testing.T) {
		rentals := new(MockRentAPI)
		products := new(MockProductAPI)
		svc := NewDashboardService(rentals, products, time.Minute)

		rentals.On("ListMyOrders", ctx, "tok", api.OrderQuery{PageSize: aggregationPageSize}).
			Return(nil, assert.AnError)

		dash, err := svc.ForUser(ctx, regularSession())
		assert.Error(t, err)
		assert.Nil(t, dash)
	})
}

func TestDashboardService_Prune(t *testing.T) {
	ctx := context.Background()
	rentals := new(MockRentAPI)
	products := new(MockProductAPI)
	svc := NewDashboardService(rentals, products, time.Minute).(*dashboardService)

	now := time.Now()
	svc.now = func() time.Time { return now }
	rentals.On("ListMyOrders", ctx, "tok", api.OrderQuery{PageSize: aggregationPageSize}).
		Return(sampleOrders(), nil)

	_, err := svc.ForUser(ctx, regularSession())
	require.NoError(t, err)

	assert.Zero(t, svc.Prune(), "fresh entries survive a prune")

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, svc.Prune())
	assert.Zero(t, svc.Prune(), "pruned entries stay gone")
}
