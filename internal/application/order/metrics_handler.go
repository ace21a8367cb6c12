package order

import (
	"context"
	"fmt"

	"github.com/fashionstop/storefront/internal/domain/order"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/fashionstop/storefront/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/metric"
)

// MetricsHandler turns order events into business metrics
type MetricsHandler struct {
	placed        *telemetry.Counter
	itemsSold     *telemetry.Counter
	revenue       metric.Float64Counter
	statusChanges *telemetry.Counter
}

// NewMetricsHandler creates the order instruments on meter
func NewMetricsHandler(meter metric.Meter) (*MetricsHandler, error) {
	placed, err := telemetry.NewCounter(meter, "shop_orders_placed_total", "Orders placed", "{order}")
	if err != nil {
		return nil, err
	}
	itemsSold, err := telemetry.NewCounter(meter, "shop_items_sold_total", "Units sold across placed orders", "{item}")
	if err != nil {
		return nil, err
	}
	revenue, err := meter.Float64Counter("shop_order_revenue_total",
		metric.WithDescription("Total value of placed orders"),
		metric.WithUnit("INR"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter shop_order_revenue_total: %w", err)
	}
	statusChanges, err := telemetry.NewCounter(meter, "shop_order_status_changes_total", "Order status transitions", "{change}")
	if err != nil {
		return nil, err
	}

	return &MetricsHandler{
		placed:        placed,
		itemsSold:     itemsSold,
		revenue:       revenue,
		statusChanges: statusChanges,
	}, nil
}

// EventTypes returns the event types this handler is interested in
func (h *MetricsHandler) EventTypes() []string {
	return []string{order.EventTypeOrderPlaced, order.EventTypeOrderStatusChanged}
}

// Handle records one order event
func (h *MetricsHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *order.OrderPlacedEvent:
		h.placed.Inc(ctx)
		h.itemsSold.Add(ctx, int64(e.ItemCount))
		h.revenue.Add(ctx, e.Total.InexactFloat64())
	case *order.OrderStatusChangedEvent:
		h.statusChanges.Inc(ctx, telemetry.AttrOrderStatus.String(string(e.NewStatus)))
	default:
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}
	return nil
}
