package order

import (
	"strings"

	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status represents the fulfilment status of an order
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// PaymentMethodCOD is the only payment method: cash on delivery
const PaymentMethodCOD = "cod"

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CountsAsRevenue reports whether orders in this status add to revenue
func (s Status) CountsAsRevenue() bool {
	return s != StatusCancelled
}

// Item is a snapshot of one cart line at submission time
type Item struct {
	ProductID string
	Name      string
	Brand     string
	Price     decimal.Decimal
	Quantity  int
	Size      string
	Color     string
}

// Subtotal returns price x quantity
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Customer holds the contact and delivery fields of an order
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Pincode string
}

// Order is a placed order. Only Status changes after creation.
type Order struct {
	shared.BaseAggregateRoot
	Customer      Customer
	Items         []Item
	Total         decimal.Decimal
	Status        Status
	PaymentMethod string
}

// NewOrder creates a pending cash-on-delivery order. The total is derived
// from the items.
func NewOrder(id string, customer Customer, items []Item) (*Order, error) {
	customer = customer.trimmed()
	if missing := customer.MissingFields(); len(missing) > 0 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Missing required fields: "+strings.Join(missing, ", "))
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}
	snapshot := make([]Item, len(items))
	for i, item := range items {
		if err := validateItem(item); err != nil {
			return nil, err
		}
		snapshot[i] = item
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id),
		Customer:          customer,
		Items:             snapshot,
		Status:            StatusPending,
		PaymentMethod:     PaymentMethodCOD,
	}
	o.Total = o.ItemsTotal()

	o.AddDomainEvent(NewOrderPlacedEvent(o))
	return o, nil
}

// ItemsTotal returns the sum of item subtotals
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// SetStatus moves the order to any valid status. No transition order is
// enforced: an operator may set delivered back to pending.
func (o *Order) SetStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid order status: "+string(status))
	}
	if status == o.Status {
		return nil
	}
	previous := o.Status
	o.Status = status
	o.Touch()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, previous))
	return nil
}

// MissingFields returns the names of blank required fields in declaration
// order.
func (c Customer) MissingFields() []string {
	fields := []struct {
		name  string
		value string
	}{
		{"customerName", c.Name},
		{"email", c.Email},
		{"phone", c.Phone},
		{"address", c.Address},
		{"city", c.City},
		{"pincode", c.Pincode},
	}
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func (c Customer) trimmed() Customer {
	return Customer{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
		City:    strings.TrimSpace(c.City),
		Pincode: strings.TrimSpace(c.Pincode),
	}
}

func validateItem(item Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return shared.NewDomainError("INVALID_ITEM", "Order item name cannot be empty")
	}
	if item.Quantity <= 0 {
		return shared.NewDomainError("INVALID_ITEM", "Order item quantity must be positive")
	}
	if item.Price.IsNegative() {
		return shared.NewDomainError("INVALID_ITEM", "Order item price cannot be negative")
	}
	return nil
}
