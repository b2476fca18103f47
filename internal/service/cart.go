package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

type cartService struct {
	backend CartAPI
}

func NewCartService(backend CartAPI) CartService {
	return &cartService{backend: backend}
}

func (s *cartService) Get(ctx context.Context, token string) (*domain.Cart, error) {
	return s.backend.GetCart(ctx, token)
}

// Every mutation is fire-and-confirm: issue the request, then re-fetch the
// authoritative cart. Nothing is mutated locally, so a failed request leaves
// the displayed state untouched.

func (s *cartService) Add(ctx context.Context, token, productID string, quantity int) (*domain.Cart, error) {
	if err := s.backend.AddToCart(ctx, token, productID, quantity); err != nil {
		return nil, err
	}
	return s.backend.GetCart(ctx, token)
}

func (s *cartService) UpdateItem(ctx context.Context, token, itemID string, quantity int) (*domain.Cart, error) {
	if err := s.backend.UpdateCartItem(ctx, token, itemID, quantity); err != nil {
		return nil, err
	}
	return s.backend.GetCart(ctx, token)
}

func (s *cartService) RemoveItem(ctx context.Context, token, itemID string) (*domain.Cart, error) {
	if err := s.backend.RemoveCartItem(ctx, token, itemID); err != nil {
		return nil, err
	}
	return s.backend.GetCart(ctx, token)
}

func (s *cartService) Clear(ctx context.Context, token string) (*domain.Cart, error) {
	if err := s.backend.ClearCart(ctx, token); err != nil {
		return nil, err
	}
	return s.backend.GetCart(ctx, token)
}

// WeeklyTotal sums quantity times weekly price across the cart, in rupiah.
func WeeklyTotal(cart *domain.Cart) decimal.Decimal {
	total := decimal.Zero
	if cart == nil {
		return total
	}
	for _, item := range cart.Items {
		if item.Product == nil {
			continue
		}
		line := decimal.NewFromInt(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// TotalCost multiplies the weekly total by the rental duration in weeks.
func TotalCost(cart *domain.Cart, weeks int) decimal.Decimal {
	if weeks < 1 {
		weeks = 1
	}
	return WeeklyTotal(cart).Mul(decimal.NewFromInt(int64(weeks)))
}
