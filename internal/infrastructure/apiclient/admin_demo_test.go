package apiclient

import (
	"context"
	"testing"

	"github.com/fashionstop/storefront/internal/application/storefront"
	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func countID(products []catalog.Product, id string) int {
	n := 0
	for _, p := range products {
		if p.ID == id {
			n++
		}
	}
	return n
}

// A demo-mode server keeps created products in memory, so the client must
// not hold a second copy of them.
func TestAdminConsole_DemoBackendCatalog(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)
	view := storefront.NewCatalogView(c, zap.NewNop())
	console := storefront.NewAdminConsole(c, storefront.NewSessionStore(), view, zap.NewNop())

	_, err := console.Login(ctx, "sujal", "pass123")
	require.NoError(t, err)

	created, err := console.AddProduct(ctx, storefront.ProductForm{
		Name:  "Club C 85",
		Brand: "Reebok",
		Price: "100",
		Image: "https://img.example/clubc.png",
	})
	require.NoError(t, err)
	require.True(t, catalog.IsDemoID(created.ID))

	require.NoError(t, view.Refresh(ctx))
	assert.Equal(t, 1, countID(view.Products(), created.ID))
	assert.Empty(t, view.DemoProducts())

	tab, err := console.Open(ctx, storefront.TabProducts)
	require.NoError(t, err)
	assert.Len(t, tab.Products, 1)

	require.NoError(t, console.DeleteProduct(ctx, created.ID))
	require.NoError(t, view.Refresh(ctx))
	assert.Zero(t, countID(view.Products(), created.ID))

	tab, err = console.Open(ctx, storefront.TabProducts)
	require.NoError(t, err)
	assert.Empty(t, tab.Products)
}
