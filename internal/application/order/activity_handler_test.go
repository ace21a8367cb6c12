package order

import (
	"context"
	"testing"

	"github.com/fashionstop/storefront/internal/domain/order"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestActivityLogHandler(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := NewActivityLogHandler(zap.New(core))
	ctx := context.Background()

	o, err := order.NewOrder("ORD-abcdefgh", order.Customer{
		Name: "Asha Rao", Email: "a@b.c", Phone: "1", Address: "x", City: "Pune", Pincode: "411001",
	}, []order.Item{{Name: "Air Max", Price: decimal.NewFromInt(1999), Quantity: 2}})
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, order.NewOrderPlacedEvent(o)))
	require.NoError(t, o.SetStatus(order.StatusShipped))
	require.NoError(t, h.Handle(ctx, order.NewOrderStatusChangedEvent(o, order.StatusPending)))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Order placed", entries[0].Message)
	assert.Equal(t, "3998.00", entries[0].ContextMap()["total"])
	assert.Equal(t, int64(2), entries[0].ContextMap()["item_count"])
	assert.Equal(t, "Order status changed", entries[1].Message)
	assert.Equal(t, "shipped", entries[1].ContextMap()["to"])

	evt := shared.NewBaseDomainEvent("ProductCreated", "Product", "p1")
	assert.Error(t, h.Handle(ctx, &evt))
	assert.ElementsMatch(t, []string{order.EventTypeOrderPlaced, order.EventTypeOrderStatusChanged}, h.EventTypes())
}
