package order

import (
	"context"

	"github.com/shopspring/decimal"
)

// RecentOrdersLimit caps the admin order listing
const RecentOrdersLimit = 50

// Stats aggregates the admin dashboard figures
type Stats struct {
	TotalProducts int64
	TotalOrders   int64
	PendingOrders int64
	// TotalRevenue sums the totals of all orders that are not cancelled
	TotalRevenue decimal.Decimal
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by its order id
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindRecent returns up to limit orders, newest first
	FindRecent(ctx context.Context, limit int) ([]Order, error)

	// Save creates or updates an order with its items
	Save(ctx context.Context, o *Order) error

	// Count counts all orders
	Count(ctx context.Context) (int64, error)

	// CountByStatus counts orders in the given status
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// SumRevenue sums the totals of orders whose status counts as revenue
	SumRevenue(ctx context.Context) (decimal.Decimal, error)

	// NextID issues the identifier for a new order
	NextID() string
}
