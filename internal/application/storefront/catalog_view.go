package storefront

import (
	"context"
	"sync"

	"github.com/fashionstop/storefront/internal/domain/catalog"
	"go.uber.org/zap"
)

// CatalogView keeps the rendered catalog: backend products merged with
// demo products that only live in this client.
type CatalogView struct {
	mu       sync.Mutex
	api      API
	showcase *catalog.Showcase
	backend  []catalog.Product
	demo     []catalog.Product
	logger   *zap.Logger
}

// NewCatalogView creates a view with the default brand sections
func NewCatalogView(api API, logger *zap.Logger) *CatalogView {
	return &CatalogView{
		api:      api,
		showcase: catalog.NewShowcase(catalog.DefaultSections()...),
		logger:   logger,
	}
}

// Refresh fetches the products and re-renders. When the backend cannot be
// reached only the demo products are shown and the error is returned.
func (v *CatalogView) Refresh(ctx context.Context) error {
	products, err := v.api.ListProducts(ctx, ProductQuery{})

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		v.logger.Warn("Failed to load products, showing demo products only",
			zap.Int("demo_products", len(v.demo)),
			zap.Error(err),
		)
		v.backend = nil
		v.showcase.Render(catalog.Merge(nil, v.demo))
		return err
	}

	v.backend = products
	v.showcase.Render(v.mergeLocked(products))
	return nil
}

// AddDemo keeps p locally and shows it right away. A product the backend
// already serves is not duplicated and false is returned.
func (v *CatalogView) AddDemo(p catalog.Product) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if containsID(v.backend, p.ID) || containsID(v.demo, p.ID) {
		return false
	}
	v.demo = append(v.demo, p.Clone())
	v.showcase.Append(p)
	return true
}

// HasDemo reports whether id is a product held only by this client
func (v *CatalogView) HasDemo(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return containsID(v.demo, id)
}

// Merge combines a backend list with the local demo products. Demo products
// the backend serves are dropped from the local list first, so the two
// sources stay disjoint.
func (v *CatalogView) Merge(backend []catalog.Product) []catalog.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mergeLocked(backend)
}

func (v *CatalogView) mergeLocked(backend []catalog.Product) []catalog.Product {
	kept := v.demo[:0]
	for _, p := range v.demo {
		if containsID(backend, p.ID) {
			v.logger.Debug("Demo product now served by backend", zap.String("product_id", p.ID))
			continue
		}
		kept = append(kept, p)
	}
	v.demo = kept
	return catalog.Merge(backend, v.demo)
}

func containsID(products []catalog.Product, id string) bool {
	for i := range products {
		if products[i].ID == id {
			return true
		}
	}
	return false
}

// RemoveDemo drops a demo product. It reports whether one was removed.
func (v *CatalogView) RemoveDemo(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.demo {
		if v.demo[i].ID == id {
			v.demo = append(v.demo[:i], v.demo[i+1:]...)
			v.showcase.Render(catalog.Merge(v.backend, v.demo))
			return true
		}
	}
	return false
}

// DemoProducts returns copies of the demo products
func (v *CatalogView) DemoProducts() []catalog.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return catalog.Merge(nil, v.demo)
}

// Products returns the merged product list of the last render
func (v *CatalogView) Products() []catalog.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return catalog.Merge(v.backend, v.demo)
}

// Sections returns the rendered brand sections
func (v *CatalogView) Sections() []catalog.Section {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.showcase.Sections()
}

// NewArrivals returns the rendered featured products
func (v *CatalogView) NewArrivals() []catalog.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.showcase.NewArrivals()
}
