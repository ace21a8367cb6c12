package order

import (
	"context"
	"fmt"

	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/fashionstop/storefront/internal/domain/order"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/fashionstop/storefront/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// OrderService handles order placement and the admin order operations
type OrderService struct {
	orderRepo   order.OrderRepository
	productRepo catalog.ProductRepository
	publisher   shared.EventPublisher
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(
	orderRepo order.OrderRepository,
	productRepo catalog.ProductRepository,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Place creates a pending cash-on-delivery order. The stored total is the
// sum of the submitted items; a differing client total is logged.
func (s *OrderService) Place(ctx context.Context, req PlaceOrderRequest) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "place",
		attribute.Int("order.lines", len(req.Items)),
	)
	defer span.End()

	o, err := order.NewOrder(s.orderRepo.NextID(), req.customer(), req.items())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if req.Total != nil && !req.Total.Equal(o.Total) {
		s.logger.Warn("Client order total differs from item sum",
			zap.String("order_id", o.ID),
			zap.String("client_total", req.Total.String()),
			zap.String("total", o.Total.String()),
		)
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	s.publish(ctx, o)

	s.logger.Info("Order placed",
		zap.String("order_id", o.ID),
		zap.String("total", o.Total.String()),
	)
	span.SetAttributes(attribute.String("order.id", o.ID))
	telemetry.SetOK(span)
	response := ToOrderResponse(o)
	return &response, nil
}

// Recent returns the latest orders, newest first
func (s *OrderService) Recent(ctx context.Context) ([]OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "recent")
	defer span.End()

	orders, err := s.orderRepo.FindRecent(ctx, order.RecentOrdersLimit)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
	}
	return out, nil
}

// UpdateStatus sets the status of an order. Any valid status is accepted
// regardless of the current one.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "update_status",
		attribute.String("order.id", id),
		attribute.String("order.status", req.Status),
	)
	defer span.End()

	status := order.Status(req.Status)
	if !status.IsValid() {
		err := shared.NewDomainError("INVALID_STATUS", "Invalid order status: "+req.Status)
		telemetry.RecordError(span, err)
		return nil, err
	}

	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := o.SetStatus(status); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	s.publish(ctx, o)

	telemetry.SetOK(span)
	response := ToOrderResponse(o)
	return &response, nil
}

// Stats returns the dashboard figures
func (s *OrderService) Stats(ctx context.Context) (*StatsResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "stats")
	defer span.End()

	products, err := s.productRepo.Count(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("count products: %w", err)
	}
	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("count orders: %w", err)
	}
	pending, err := s.orderRepo.CountByStatus(ctx, order.StatusPending)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("count pending orders: %w", err)
	}
	revenue, err := s.orderRepo.SumRevenue(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	return &StatsResponse{
		TotalProducts: products,
		TotalOrders:   orders,
		PendingOrders: pending,
		TotalRevenue:  revenue,
	}, nil
}

// publish forwards the aggregate's events; failures never undo the write
func (s *OrderService) publish(ctx context.Context, o *order.Order) {
	events := o.GetDomainEvents()
	o.ClearDomainEvents()
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish order events",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
	}
}
