package order

import (
	"context"
	"fmt"

	"github.com/fashionstop/storefront/internal/domain/order"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// ActivityLogHandler records order lifecycle events in the server log
type ActivityLogHandler struct {
	logger *zap.Logger
}

// NewActivityLogHandler creates a new ActivityLogHandler
func NewActivityLogHandler(logger *zap.Logger) *ActivityLogHandler {
	return &ActivityLogHandler{logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *ActivityLogHandler) EventTypes() []string {
	return []string{order.EventTypeOrderPlaced, order.EventTypeOrderStatusChanged}
}

// Handle logs one order event
func (h *ActivityLogHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *order.OrderPlacedEvent:
		h.logger.Info("Order placed",
			zap.String("order_id", e.OrderID),
			zap.String("customer", e.CustomerName),
			zap.Int("item_count", e.ItemCount),
			zap.String("total", e.Total.StringFixed(2)),
		)
	case *order.OrderStatusChangedEvent:
		h.logger.Info("Order status changed",
			zap.String("order_id", e.OrderID),
			zap.String("from", string(e.OldStatus)),
			zap.String("to", string(e.NewStatus)),
		)
	default:
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}
	return nil
}
