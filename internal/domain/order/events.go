package order

import (
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderPlaced        = "OrderPlaced"
	EventTypeOrderStatusChanged = "OrderStatusChanged"
)

// OrderPlacedEvent is published when a new order is accepted
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID      string          `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	ItemCount    int             `json:"item_count"`
	Total        decimal.Decimal `json:"total"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(o *Order) *OrderPlacedEvent {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		CustomerName:    o.Customer.Name,
		ItemCount:       count,
		Total:           o.Total,
	}
}

// OrderStatusChangedEvent is published when an operator changes the status
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID   string `json:"order_id"`
	OldStatus Status `json:"old_status"`
	NewStatus Status `json:"new_status"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(o *Order, previous Status) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OldStatus:       previous,
		NewStatus:       o.Status,
	}
}
