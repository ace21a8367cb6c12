package storefront

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/fashionstop/storefront/internal/domain/cart"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func confirmedEvent() *OrderConfirmedEvent {
	return NewOrderConfirmedEvent("ORD-K3x9Qa1Z",
		CustomerForm{
			CustomerName: "Asha Rao",
			Email:        "asha@example.com",
			Phone:        "9876543210",
			Address:      "12 MG Road",
			City:         "Pune",
			Pincode:      "411001",
		},
		[]cart.Entry{
			{ProductID: "A", Name: "Air Max 270", Price: decimal.NewFromInt(1999), Quantity: 2},
			{ProductID: "B", Name: "Ultraboost 22", Price: decimal.NewFromInt(2499), Quantity: 1},
		},
		decimal.NewFromInt(6497),
	)
}

type linkRecorder struct {
	links []string
	err   error
}

func (r *linkRecorder) Open(_ context.Context, link string) error {
	r.links = append(r.links, link)
	return r.err
}

func TestBuildOrderMessage(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

	msg := BuildOrderMessage(confirmedEvent(), at)

	want := "🛍️ *New Order Received*\n\n" +
		"📋 *Order ID:* ORD-K3x9Qa1Z\n" +
		"👤 *Customer:* Asha Rao\n" +
		"📧 *Email:* asha@example.com\n" +
		"📱 *Phone:* 9876543210\n" +
		"📍 *Address:* 12 MG Road, Pune - 411001\n\n" +
		"🛒 *Items Ordered:*\n" +
		"1. Air Max 270 - ₹1999 x 2 = ₹3998\n" +
		"2. Ultraboost 22 - ₹2499 x 1 = ₹2499\n" +
		"\n💰 *Total Amount:* ₹6497\n" +
		"📅 *Order Date:* 05/03/2024, 14:07:09\n\n" +
		"Please process this order. Thank you! 🙏"
	assert.Equal(t, want, msg)
}

func TestWhatsAppURL(t *testing.T) {
	link := WhatsAppURL("91", "8830440336", "New order & more?\nTotal: ₹10")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/918830440336?text="))
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "New order & more?\nTotal: ₹10", u.Query().Get("text"))
}

func TestWhatsAppNotifier_Handle(t *testing.T) {
	t.Run("opens link after delay", func(t *testing.T) {
		rec := &linkRecorder{}
		n := NewWhatsAppNotifier(NotifierConfig{AdminNumber: "8830440336", Delay: 10 * time.Millisecond}, rec, zap.NewNop())
		n.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

		start := time.Now()
		require.NoError(t, n.Handle(context.Background(), confirmedEvent()))

		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
		require.Len(t, rec.links, 1)
		u, err := url.Parse(rec.links[0])
		require.NoError(t, err)
		assert.Equal(t, "/918830440336", u.Path)
		assert.Contains(t, u.Query().Get("text"), "02/01/2024, 03:04:05")
	})

	t.Run("cancelled context skips notification", func(t *testing.T) {
		rec := &linkRecorder{}
		n := NewWhatsAppNotifier(NotifierConfig{AdminNumber: "1", Delay: time.Hour}, rec, zap.NewNop())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := n.Handle(ctx, confirmedEvent())

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, rec.links)
	})

	t.Run("opener failure is returned", func(t *testing.T) {
		rec := &linkRecorder{err: errors.New("no browser")}
		n := NewWhatsAppNotifier(NotifierConfig{AdminNumber: "1"}, rec, zap.NewNop())

		err := n.Handle(context.Background(), confirmedEvent())

		assert.EqualError(t, err, "no browser")
		assert.Len(t, rec.links, 1)
	})

	t.Run("rejects other events", func(t *testing.T) {
		rec := &linkRecorder{}
		n := NewWhatsAppNotifier(NotifierConfig{AdminNumber: "1"}, rec, zap.NewNop())
		evt := shared.NewBaseDomainEvent("OrderPlaced", "Order", "ORD-1")

		err := n.Handle(context.Background(), &evt)

		assert.Error(t, err)
		assert.Empty(t, rec.links)
	})

	t.Run("handles only order confirmations", func(t *testing.T) {
		n := NewWhatsAppNotifier(NotifierConfig{}, OpenerFunc(func(context.Context, string) error { return nil }), zap.NewNop())
		assert.Equal(t, []string{EventTypeOrderConfirmed}, n.EventTypes())
	})
}
