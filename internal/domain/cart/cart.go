package cart

import (
	"regexp"
	"strings"

	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Item describes a product being put into the cart.
type Item struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Image     string
	Brand     string
}

// Entry is one line of the cart. There is at most one entry per ProductID
// and Quantity is always at least 1.
type Entry struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Brand     string          `json:"brand"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns price x quantity for the entry
func (e Entry) Subtotal() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Cart is the shopper's ordered selection of products, kept in insertion order.
// All methods are pure state transitions; persistence is the caller's job.
type Cart struct {
	entries []Entry
}

// New creates a cart from previously stored entries. Entries with a blank
// product id or a non-positive quantity are dropped and duplicate product
// ids are folded into the first occurrence, so a hand-edited or partially
// corrupt snapshot still yields a valid cart.
func New(entries []Entry) *Cart {
	c := &Cart{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		if strings.TrimSpace(e.ProductID) == "" || e.Quantity <= 0 {
			continue
		}
		if i := c.indexOf(e.ProductID); i >= 0 {
			c.entries[i].Quantity += e.Quantity
			continue
		}
		c.entries = append(c.entries, e)
	}
	return c
}

// Add increments the quantity of an existing entry or appends a new entry
// with quantity 1.
func (c *Cart) Add(item Item) {
	if i := c.indexOf(item.ProductID); i >= 0 {
		c.entries[i].Quantity++
		return
	}
	c.entries = append(c.entries, Entry{
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		Image:     item.Image,
		Brand:     item.Brand,
		Quantity:  1,
	})
}

// Remove drops the entry for productID. Removing an absent product is a no-op.
// It reports whether an entry was removed.
func (c *Cart) Remove(productID string) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return true
}

// Adjust changes the quantity of productID by delta. A resulting quantity of
// zero or less removes the entry. It reports whether productID was present,
// in which case the cart must be persisted even for a zero delta.
func (c *Cart) Adjust(productID string, delta int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	if c.entries[i].Quantity+delta <= 0 {
		return c.Remove(productID)
	}
	c.entries[i].Quantity += delta
	return true
}

// Clear removes every entry
func (c *Cart) Clear() {
	c.entries = c.entries[:0]
}

// Total returns the sum of price x quantity over all entries, computed from
// scratch on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.Subtotal())
	}
	return total
}

// ItemCount returns the sum of quantities
func (c *Cart) ItemCount() int {
	count := 0
	for _, e := range c.entries {
		count += e.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no entries
func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Len returns the number of distinct entries
func (c *Cart) Len() int {
	return len(c.entries)
}

// Find returns the entry for productID
func (c *Cart) Find(productID string) (Entry, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.entries[i], true
	}
	return Entry{}, false
}

// Snapshot returns a copy of the entries that is safe to keep after further
// mutations.
func (c *Cart) Snapshot() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.entries {
		if c.entries[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// ParsePrice converts raw user or form input into a price. Non-numeric or
// negative input is rejected.
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, shared.NewDomainError("INVALID_PRICE", "Price must be a number")
	}
	if price.IsNegative() {
		return decimal.Zero, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return price, nil
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// CoercePrice reads the longest numeric prefix of raw, ignoring leading
// whitespace, the way a browser's parseFloat does. Input without a numeric
// prefix yields zero. It never fails.
func CoercePrice(raw string) decimal.Decimal {
	m := leadingNumber.FindString(strings.TrimLeft(raw, " \t\n\r"))
	if m == "" {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return price
}

// FormatAmount renders an amount with two decimals for display
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
