package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogView_MergesBackendAndDemo(t *testing.T) {
	api := new(MockAPI)
	view := NewCatalogView(api, zap.NewNop())

	api.On("ListProducts", mock.Anything, ProductQuery{}).Return([]catalog.Product{
		testProduct(t, "a", "Nike", true),
		testProduct(t, "b", "Puma", false),
	}, nil)

	demo := testProduct(t, "demo1700000000000", "Reebok", false)
	view.AddDemo(demo)
	require.NoError(t, view.Refresh(context.Background()))

	products := view.Products()
	require.Len(t, products, 3)
	assert.Equal(t, "demo1700000000000", products[2].ID)

	reebok, ok := findSection(view.Sections(), "Reebok Collection")
	require.True(t, ok)
	assert.Len(t, reebok.Cards, 1)
	assert.Len(t, view.NewArrivals(), 1)

	api.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestCatalogView_RefreshIsIdempotent(t *testing.T) {
	api := new(MockAPI)
	view := NewCatalogView(api, zap.NewNop())
	api.On("ListProducts", mock.Anything, ProductQuery{}).Return([]catalog.Product{
		testProduct(t, "a", "Converse", true),
	}, nil)

	require.NoError(t, view.Refresh(context.Background()))
	first := view.Sections()
	require.NoError(t, view.Refresh(context.Background()))

	assert.Equal(t, first, view.Sections())
	assert.Len(t, view.NewArrivals(), 1)
}

func TestCatalogView_TransportFailureShowsDemoOnly(t *testing.T) {
	api := new(MockAPI)
	view := NewCatalogView(api, zap.NewNop())
	api.On("ListProducts", mock.Anything, ProductQuery{}).
		Return([]catalog.Product{testProduct(t, "a", "Nike", false)}, nil).Once()
	api.On("ListProducts", mock.Anything, ProductQuery{}).
		Return(nil, &TransportError{Op: "GET /api/products", Err: errors.New("refused")}).Once()

	view.AddDemo(testProduct(t, "demo1", "Bata", false))
	require.NoError(t, view.Refresh(context.Background()))
	assert.Len(t, view.Products(), 2)

	err := view.Refresh(context.Background())

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	products := view.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "demo1", products[0].ID)
}

func TestCatalogView_RemoveDemo(t *testing.T) {
	view := NewCatalogView(new(MockAPI), zap.NewNop())
	view.AddDemo(testProduct(t, "demo1", "Bata", false))

	assert.True(t, view.RemoveDemo("demo1"))
	assert.False(t, view.RemoveDemo("demo1"))
	assert.Empty(t, view.DemoProducts())
	_, ok := findSection(view.Sections(), "Bata Collection")
	assert.False(t, ok)
}

func findSection(sections []catalog.Section, title string) (catalog.Section, bool) {
	for _, s := range sections {
		if s.Title == title {
			return s, true
		}
	}
	return catalog.Section{}, false
}

func TestCatalogView_DemoAndBackendStayDisjoint(t *testing.T) {
	api := new(MockAPI)
	view := NewCatalogView(api, zap.NewNop())
	served := testProduct(t, "demo1", "Bata", false)
	api.On("ListProducts", mock.Anything, ProductQuery{}).Return([]catalog.Product{served}, nil)

	assert.True(t, view.AddDemo(served))
	assert.False(t, view.AddDemo(served))
	require.NoError(t, view.Refresh(context.Background()))

	assert.Len(t, view.Products(), 1)
	assert.Empty(t, view.DemoProducts())
	assert.False(t, view.HasDemo("demo1"))
	assert.False(t, view.AddDemo(served))
}
