package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/fashionstop/storefront/internal/domain/shared"
)

// ProductRepository keeps products in a map guarded by a RWMutex
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*catalog.Product
	lastID   int64
	now      func() time.Time
}

// NewProductRepository creates an empty ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[string]*catalog.Product),
		now:      time.Now,
	}
}

// FindByID returns a copy of the stored product
func (r *ProductRepository) FindByID(_ context.Context, id string) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	clone := p.Clone()
	return &clone, nil
}

// FindAll returns copies of the products matching the filter, newest first
func (r *ProductRepository) FindAll(_ context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Matches(p) {
			out = append(out, p.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Save stores a copy of the product
func (r *ProductRepository) Save(_ context.Context, product *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := product.Clone()
	r.products[product.ID] = &clone
	return nil
}

// Delete removes a product
func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// Count counts all products
func (r *ProductRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

// NextID issues a demo id ("demo" + unix millis). Ids issued within the
// same millisecond are bumped so they stay unique.
func (r *ProductRepository) NextID() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ms := r.now().UnixMilli()
	if ms <= r.lastID {
		ms = r.lastID + 1
	}
	r.lastID = ms
	return catalog.DemoID(time.UnixMilli(ms))
}

var _ catalog.ProductRepository = (*ProductRepository)(nil)
