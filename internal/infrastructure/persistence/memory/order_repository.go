package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fashionstop/storefront/internal/domain/order"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderRepository keeps orders in a map guarded by a RWMutex
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

// NewOrderRepository creates an empty OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]*order.Order)}
}

// copyOrder detaches the stored order from the caller. Domain events are
// not carried over.
func copyOrder(o *order.Order) *order.Order {
	c := &order.Order{
		Customer:      o.Customer,
		Items:         append([]order.Item(nil), o.Items...),
		Total:         o.Total,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
	}
	c.BaseEntity = o.BaseEntity
	return c
}

// FindByID returns a copy of the stored order
func (r *OrderRepository) FindByID(_ context.Context, id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return copyOrder(o), nil
}

// FindRecent returns up to limit orders, newest first
func (r *OrderRepository) FindRecent(_ context.Context, limit int) ([]order.Order, error) {
	if limit <= 0 {
		limit = order.RecentOrdersLimit
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *copyOrder(o))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Save stores a copy of the order
func (r *OrderRepository) Save(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = copyOrder(o)
	return nil
}

// Count counts all orders
func (r *OrderRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}

// CountByStatus counts orders in the given status
func (r *OrderRepository) CountByStatus(_ context.Context, status order.Status) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, o := range r.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

// SumRevenue sums the totals of orders that are not cancelled
func (r *OrderRepository) SumRevenue(_ context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sum := decimal.Zero
	for _, o := range r.orders {
		if o.Status.CountsAsRevenue() {
			sum = sum.Add(o.Total)
		}
	}
	return sum, nil
}

// NextID issues an "ORD-" prefixed id
func (r *OrderRepository) NextID() string {
	return shared.NewOrderID()
}

var _ order.OrderRepository = (*OrderRepository)(nil)
