package catalog

import (
	"context"
	"strings"
)

// ProductFilter narrows a product listing
type ProductFilter struct {
	// Brand matches case-insensitively anywhere in the product brand
	Brand string
	// Featured, when set, keeps only products with the same featured flag
	Featured *bool
	// Category matches exactly
	Category string
}

// Matches reports whether p passes the filter. Repositories that cannot push
// the filter into a query use it directly.
func (f ProductFilter) Matches(p *Product) bool {
	if f.Brand != "" && !strings.Contains(strings.ToLower(p.Brand), strings.ToLower(f.Brand)) {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return true
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindAll returns the products matching the filter, newest first
	FindAll(ctx context.Context, filter ProductFilter) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product, returning shared.ErrNotFound if it does not exist
	Delete(ctx context.Context, id string) error

	// Count counts all products
	Count(ctx context.Context) (int64, error)

	// NextID issues the identifier for a new product
	NextID() string
}
