package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fashionstop/storefront/internal/domain/cart"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartListener is told about every cart change, e.g. to refresh a badge
type CartListener interface {
	OnCartChanged(count int, total decimal.Decimal)
}

// CartListenerFunc adapts a function to CartListener
type CartListenerFunc func(count int, total decimal.Decimal)

// OnCartChanged calls f
func (f CartListenerFunc) OnCartChanged(count int, total decimal.Decimal) {
	f(count, total)
}

// CartService owns the shopper's cart. Every mutation writes the whole cart
// through the store and then notifies the listeners.
type CartService struct {
	mu        sync.Mutex
	cart      *cart.Cart
	store     cart.Store
	listeners []CartListener
	logger    *zap.Logger
}

// NewCartService loads the stored cart. A missing or unreadable cart starts
// empty.
func NewCartService(ctx context.Context, store cart.Store, logger *zap.Logger) *CartService {
	entries, err := store.Load(ctx)
	if err != nil {
		if errors.Is(err, cart.ErrCorrupt) {
			logger.Warn("Stored cart is corrupt, starting with an empty cart", zap.Error(err))
		} else {
			logger.Warn("Failed to load cart, starting with an empty cart", zap.Error(err))
		}
		entries = nil
	}

	return &CartService{
		cart:   cart.New(entries),
		store:  store,
		logger: logger,
	}
}

// Subscribe registers a listener
func (s *CartService) Subscribe(l CartListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// AddItem adds one unit of item
func (s *CartService) AddItem(ctx context.Context, item cart.Item) error {
	return s.mutate(ctx, func(c *cart.Cart) bool {
		c.Add(item)
		return true
	})
}

// AddProduct adds one unit of a product whose price comes from raw input.
// The price is coerced, never rejected; see cart.CoercePrice.
func (s *CartService) AddProduct(ctx context.Context, productID, name, rawPrice, image, brand string) error {
	return s.AddItem(ctx, cart.Item{
		ProductID: productID,
		Name:      name,
		Price:     cart.CoercePrice(rawPrice),
		Image:     image,
		Brand:     brand,
	})
}

// RemoveItem drops a product from the cart
func (s *CartService) RemoveItem(ctx context.Context, productID string) error {
	return s.mutate(ctx, func(c *cart.Cart) bool {
		c.Remove(productID)
		return true
	})
}

// AdjustQuantity changes a product's quantity by delta; reaching zero
// removes it. Unknown products are ignored.
func (s *CartService) AdjustQuantity(ctx context.Context, productID string, delta int) error {
	return s.mutate(ctx, func(c *cart.Cart) bool {
		return c.Adjust(productID, delta)
	})
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context) error {
	return s.mutate(ctx, func(c *cart.Cart) bool {
		c.Clear()
		return true
	})
}

// Snapshot returns a copy of the cart entries
func (s *CartService) Snapshot() []cart.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// Total returns the cart total
func (s *CartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// ItemCount returns the number of units in the cart
func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// IsEmpty reports whether the cart has no entries
func (s *CartService) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

// mutate applies fn and, when it reports a change, persists the cart and
// notifies listeners. A failed write keeps the in-memory change.
func (s *CartService) mutate(ctx context.Context, fn func(*cart.Cart) bool) error {
	s.mu.Lock()
	if !fn(s.cart) {
		s.mu.Unlock()
		return nil
	}
	entries := s.cart.Snapshot()
	count, total := s.cart.ItemCount(), s.cart.Total()
	listeners := append([]CartListener(nil), s.listeners...)
	err := s.store.Save(ctx, entries)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Failed to save cart", zap.Int("entries", len(entries)), zap.Error(err))
		err = fmt.Errorf("save cart: %w", err)
	}

	for _, l := range listeners {
		l.OnCartChanged(count, total)
	}
	return err
}
