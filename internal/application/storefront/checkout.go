package storefront

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutState is the position of the checkout workflow
type CheckoutState int

const (
	CheckoutIdle CheckoutState = iota
	CheckoutValidating
	CheckoutSubmitting
	CheckoutConfirmed
	CheckoutFailed
)

// String returns the state name
func (s CheckoutState) String() string {
	switch s {
	case CheckoutIdle:
		return "idle"
	case CheckoutValidating:
		return "validating"
	case CheckoutSubmitting:
		return "submitting"
	case CheckoutConfirmed:
		return "confirmed"
	case CheckoutFailed:
		return "failed"
	}
	return "unknown"
}

// ErrCartEmpty is wrapped by the ValidationError returned when checking out
// an empty cart
var ErrCartEmpty = errors.New("cart is empty")

// orderFailedOp prefixes transport failures of an order submission
const orderFailedOp = "Error placing order"

// Confirmation is the result of a successful checkout
type Confirmation struct {
	OrderID string
	Total   decimal.Decimal
	Message string
}

// Checkout submits the cart as an order. Every attempt ends back in
// CheckoutIdle so the shopper can retry; the last form is kept for that.
type Checkout struct {
	mu        sync.Mutex
	state     CheckoutState
	lastForm  CustomerForm
	observers []func(from, to CheckoutState)

	cart      *CartService
	api       API
	publisher shared.EventPublisher
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewCheckout creates a new Checkout. publisher may be nil.
func NewCheckout(cart *CartService, api API, publisher shared.EventPublisher, logger *zap.Logger) *Checkout {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return &Checkout{
		cart:      cart,
		api:       api,
		publisher: publisher,
		validate:  v,
		logger:    logger,
	}
}

// OnStateChange registers fn to be called on every transition
func (c *Checkout) OnStateChange(fn func(from, to CheckoutState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// State returns the current state
func (c *Checkout) State() CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastForm returns the form of the latest submission attempt, trimmed
func (c *Checkout) LastForm() CustomerForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastForm
}

// Submit validates the form, places the order and clears the cart. On
// failure the cart is untouched.
func (c *Checkout) Submit(ctx context.Context, form CustomerForm) (*Confirmation, error) {
	form = trimForm(form)
	c.mu.Lock()
	c.lastForm = form
	c.mu.Unlock()

	if c.cart.IsEmpty() {
		return nil, &ValidationError{Message: ErrCartEmpty.Error(), Err: ErrCartEmpty}
	}

	c.transition(CheckoutValidating)
	if err := c.validateForm(form); err != nil {
		c.transition(CheckoutIdle)
		return nil, err
	}

	c.transition(CheckoutSubmitting)
	items := c.cart.Snapshot()
	total := c.cart.Total()

	placed, err := c.api.PlaceOrder(ctx, OrderSubmission{Customer: form, Items: items, Total: total})
	if err != nil {
		c.transition(CheckoutFailed)
		c.transition(CheckoutIdle)
		c.logger.Warn("Order submission failed", zap.Error(err))
		return nil, submitError(err)
	}

	if err := c.cart.Clear(ctx); err != nil {
		c.logger.Warn("Order placed but cart could not be cleared",
			zap.String("order_id", placed.ID),
			zap.Error(err),
		)
	}

	if placed.Total.IsZero() {
		placed.Total = total
	}
	c.transition(CheckoutConfirmed)
	c.notify(ctx, NewOrderConfirmedEvent(placed.ID, form, items, placed.Total))
	c.transition(CheckoutIdle)

	c.logger.Info("Order placed", zap.String("order_id", placed.ID), zap.String("total", placed.Total.String()))
	return &Confirmation{OrderID: placed.ID, Total: placed.Total, Message: placed.Message}, nil
}

func (c *Checkout) validateForm(form CustomerForm) error {
	err := c.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Message: err.Error()}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return newMissingFieldsError(fields)
}

// notify publishes the confirmation without waiting for handlers
func (c *Checkout) notify(ctx context.Context, event *OrderConfirmedEvent) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("Failed to publish order confirmation",
			zap.String("order_id", event.OrderID),
			zap.Error(err),
		)
	}
}

func (c *Checkout) transition(to CheckoutState) {
	c.mu.Lock()
	from := c.state
	c.state = to
	observers := slices.Clone(c.observers)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(from, to)
	}
}

// submitError keeps backend messages verbatim and gives transport failures
// the generic order prefix
func submitError(err error) error {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return &TransportError{Op: orderFailedOp, Err: transportErr.Err}
	}
	return &TransportError{Op: orderFailedOp, Err: err}
}

func trimForm(f CustomerForm) CustomerForm {
	return CustomerForm{
		CustomerName: strings.TrimSpace(f.CustomerName),
		Email:        strings.TrimSpace(f.Email),
		Phone:        strings.TrimSpace(f.Phone),
		Address:      strings.TrimSpace(f.Address),
		City:         strings.TrimSpace(f.City),
		Pincode:      strings.TrimSpace(f.Pincode),
	}
}
