package storefront

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fashionstop/storefront/internal/domain/cart"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EventTypeOrderConfirmed is published by Checkout after a successful order
const EventTypeOrderConfirmed = "OrderConfirmed"

// OrderConfirmedEvent carries what the shopper submitted plus the order id
type OrderConfirmedEvent struct {
	shared.BaseDomainEvent
	OrderID  string
	Customer CustomerForm
	Items    []cart.Entry
	Total    decimal.Decimal
}

// NewOrderConfirmedEvent creates a new OrderConfirmedEvent
func NewOrderConfirmedEvent(orderID string, customer CustomerForm, items []cart.Entry, total decimal.Decimal) *OrderConfirmedEvent {
	return &OrderConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderConfirmed, "Order", orderID),
		OrderID:         orderID,
		Customer:        customer,
		Items:           items,
		Total:           total,
	}
}

// Opener hands a link to the user: a browser, a terminal, a test recorder
type Opener interface {
	Open(ctx context.Context, link string) error
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func(ctx context.Context, link string) error

// Open calls f
func (f OpenerFunc) Open(ctx context.Context, link string) error {
	return f(ctx, link)
}

// NotifierConfig configures the WhatsApp notification
type NotifierConfig struct {
	AdminNumber string
	CountryCode string
	Delay       time.Duration
}

// WhatsAppNotifier opens a prefilled wa.me link for every confirmed order.
// Delivery is not confirmed and failures are not retried.
type WhatsAppNotifier struct {
	cfg    NotifierConfig
	opener Opener
	logger *zap.Logger
	now    func() time.Time
}

// NewWhatsAppNotifier creates a new WhatsAppNotifier
func NewWhatsAppNotifier(cfg NotifierConfig, opener Opener, logger *zap.Logger) *WhatsAppNotifier {
	if cfg.CountryCode == "" {
		cfg.CountryCode = "91"
	}
	return &WhatsAppNotifier{
		cfg:    cfg,
		opener: opener,
		logger: logger,
		now:    time.Now,
	}
}

// EventTypes returns the events the notifier handles
func (n *WhatsAppNotifier) EventTypes() []string {
	return []string{EventTypeOrderConfirmed}
}

// Handle waits for the configured delay and opens the notification link
func (n *WhatsAppNotifier) Handle(ctx context.Context, event shared.DomainEvent) error {
	e, ok := event.(*OrderConfirmedEvent)
	if !ok {
		return fmt.Errorf("whatsapp notifier: unexpected event %T", event)
	}

	if n.cfg.Delay > 0 {
		timer := time.NewTimer(n.cfg.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	link := WhatsAppURL(n.cfg.CountryCode, n.cfg.AdminNumber, BuildOrderMessage(e, n.now()))
	if err := n.opener.Open(ctx, link); err != nil {
		n.logger.Warn("Failed to open order notification",
			zap.String("order_id", e.OrderID),
			zap.Error(err),
		)
		return err
	}

	n.logger.Info("Order notification opened", zap.String("order_id", e.OrderID))
	return nil
}

// BuildOrderMessage renders the notification text of an order
func BuildOrderMessage(e *OrderConfirmedEvent, at time.Time) string {
	var b strings.Builder
	c := e.Customer

	b.WriteString("🛍️ *New Order Received*\n\n")
	fmt.Fprintf(&b, "📋 *Order ID:* %s\n", e.OrderID)
	fmt.Fprintf(&b, "👤 *Customer:* %s\n", c.CustomerName)
	fmt.Fprintf(&b, "📧 *Email:* %s\n", c.Email)
	fmt.Fprintf(&b, "📱 *Phone:* %s\n", c.Phone)
	fmt.Fprintf(&b, "📍 *Address:* %s", c.Address)
	if c.City != "" {
		fmt.Fprintf(&b, ", %s", c.City)
	}
	if c.Pincode != "" {
		fmt.Fprintf(&b, " - %s", c.Pincode)
	}
	b.WriteString("\n\n🛒 *Items Ordered:*\n")

	for i, item := range e.Items {
		fmt.Fprintf(&b, "%d. %s - ₹%s x %d = ₹%s\n",
			i+1, item.Name, item.Price.String(), item.Quantity, item.Subtotal().String())
	}

	fmt.Fprintf(&b, "\n💰 *Total Amount:* ₹%s\n", e.Total.String())
	fmt.Fprintf(&b, "📅 *Order Date:* %s\n\n", at.Format("02/01/2006, 15:04:05"))
	b.WriteString("Please process this order. Thank you! 🙏")
	return b.String()
}

// WhatsAppURL builds the wa.me link with the message percent-encoded
func WhatsAppURL(countryCode, number, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s%s?text=%s", countryCode, number, text)
}
