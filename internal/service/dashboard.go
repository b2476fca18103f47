package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

// aggregationPageSize bounds how much history the dashboard pulls. The
// numbers are display-only, not authoritative reporting.
const aggregationPageSize = 200

// TopProduct is a most-rented entry, ranked by summed line-item quantity.
type TopProduct struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// Dashboard is the role-differentiated landing view model. Admin dashboards
// aggregate all orders and stock levels; regular dashboards only the
// caller's own rentals.
type Dashboard struct {
	GeneratedAt      time.Time                  `json:"generated_at"`
	Admin            bool                       `json:"admin"`
	OrderCounts      map[domain.OrderStatus]int `json:"order_counts"`
	ActiveRentals    int                        `json:"active_rentals"`
	PendingApprovals int                        `json:"pending_approvals"`
	LowStockCount    int                        `json:"low_stock_count"`
	OutOfStockCount  int                        `json:"out_of_stock_count"`
	TopProducts      []TopProduct               `json:"top_products"`
}

type dashboardEntry struct {
	gen  uint64
	dash *Dashboard
}

type dashboardService struct {
	rentals  RentAPI
	products ProductAPI
	ttl      time.Duration
	now      func() time.Time

	mu      sync.Mutex
	entries map[string]*dashboardEntry // keyed by user id
}

func NewDashboardService(rentals RentAPI, products ProductAPI, ttl time.Duration) DashboardService {
	return &dashboardService{
		rentals:  rentals,
		products: products,
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[string]*dashboardEntry),
	}
}

// ForUser returns a cached dashboard while fresh, otherwise rebuilds it.
// A generation counter guards the store: a rebuild that was superseded by a
// newer one still answers its own caller but never overwrites the cache.
func (s *dashboardService) ForUser(ctx context.Context, sess *Session) (*Dashboard, error) {
	userID := sess.User.ID

	s.mu.Lock()
	entry, ok := s.entries[userID]
	if ok && entry.dash != nil && s.now().Sub(entry.dash.GeneratedAt) < s.ttl {
		dash := entry.dash
		s.mu.Unlock()
		return dash, nil
	}
	if !ok {
		entry = &dashboardEntry{}
		s.entries[userID] = entry
	}
	entry.gen++
	gen := entry.gen
	s.mu.Unlock()

	dash, err := s.build(ctx, sess)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if current, ok := s.entries[userID]; ok && current == entry && entry.gen == gen {
		entry.dash = dash
	}
	s.mu.Unlock()

	return dash, nil
}

// Prune drops cache entries whose dashboards have gone stale. Called from
// the scheduler so abandoned sessions do not pin memory.
func (s *dashboardService) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for userID, entry := range s.entries {
		if entry.dash == nil || now.Sub(entry.dash.GeneratedAt) >= s.ttl {
			delete(s.entries, userID)
			removed++
		}
	}
	return removed
}

func (s *dashboardService) build(ctx context.Context, sess *Session) (*Dashboard, error) {
	dash := &Dashboard{
		GeneratedAt: s.now(),
		Admin:       sess.User.IsAdmin(),
		OrderCounts: make(map[domain.OrderStatus]int),
	}

	var (
		list *api.OrderList
		err  error
	)
	q := api.OrderQuery{PageSize: aggregationPageSize}
	if dash.Admin {
		list, err = s.rentals.ListAllOrders(ctx, sess.Token, q)
	} else {
		list, err = s.rentals.ListMyOrders(ctx, sess.Token, q)
	}
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*TopProduct)
	for i := range list.Orders {
		order := &list.Orders[i]
		status := order.OrderStatus.Normalize()
		dash.OrderCounts[status]++
		for _, item := range order.Products {
			top, ok := totals[item.ProductID]
			if !ok {
				top = &TopProduct{ProductID: item.ProductID}
				if item.Product != nil {
					top.Name = item.Product.Name
				}
				totals[item.ProductID] = top
			}
			top.Quantity += item.Quantity
		}
	}
	dash.ActiveRentals = dash.OrderCounts[domain.OrderStatusOnRent] + dash.OrderCounts[domain.OrderStatusOverdue]
	dash.PendingApprovals = dash.OrderCounts[domain.OrderStatusWaiting]

	ranked := make([]TopProduct, 0, len(totals))
	for _, top := range totals {
		ranked = append(ranked, *top)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	dash.TopProducts = ranked

	if dash.Admin {
		products, err := s.products.ListProducts(ctx, sess.Token, api.ProductQuery{PageSize: aggregationPageSize})
		if err != nil {
			return nil, err
		}
		for i := range products.Products {
			switch products.Products[i].StockLevel() {
			case domain.StockLevelLowStock:
				dash.LowStockCount++
			case domain.StockLevelOutStock:
				dash.OutOfStockCount++
			}
		}
	}

	return dash, nil
}
