package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	catalogapp "github.com/fashionstop/storefront/internal/application/catalog"
	identityapp "github.com/fashionstop/storefront/internal/application/identity"
	orderapp "github.com/fashionstop/storefront/internal/application/order"
	"github.com/fashionstop/storefront/internal/application/storefront"
	"github.com/fashionstop/storefront/internal/domain/cart"
	"github.com/fashionstop/storefront/internal/domain/identity"
	"github.com/fashionstop/storefront/internal/infrastructure/persistence/memory"
	"github.com/fashionstop/storefront/internal/interfaces/http/handler"
	"github.com/fashionstop/storefront/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newBackend serves the real storefront API over a memory store
func newBackend(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	log := zap.NewNop()
	admin, err := identity.NewAdmin("sujal", "pass123")
	require.NoError(t, err)
	require.NoError(t, store.Admins().Save(context.Background(), admin))

	engine := gin.New()
	router.RegisterStorefront(router.NewRouter(engine), router.Handlers{
		Products: handler.NewProductHandler(catalogapp.NewProductService(store.Products(), log), store.Ephemeral()),
		Orders:   handler.NewOrderHandler(orderapp.NewOrderService(store.Orders(), store.Products(), nil, log), store.Ephemeral()),
		Auth:     handler.NewAuthHandler(identityapp.NewAuthService(store.Admins(), log)),
		System:   handler.NewSystemHandler(store.Ephemeral()),
	})

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return newClient(t, srv.URL)
}

func newClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(baseURL, time.Second, zap.NewNop())
	require.NoError(t, err)
	return c
}

func stubServer(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return newClient(t, srv.URL)
}

func draft(name, brand string, price int64, featured bool) storefront.ProductDraft {
	return storefront.ProductDraft{
		Name:     name,
		Brand:    brand,
		Price:    decimal.NewFromInt(price),
		Image:    "https://img.example/" + name,
		Sizes:    []string{"8", "9"},
		Featured: featured,
	}
}

func TestNew(t *testing.T) {
	_, err := New("not a url", 0, zap.NewNop())
	assert.Error(t, err)

	c, err := New("http://localhost:3000/", 0, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", c.baseURL)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

// ==================== Round trip ====================

func TestClient_ProductLifecycle(t *testing.T) {
	c := newBackend(t)
	ctx := context.Background()

	created, err := c.CreateProduct(ctx, draft("Air Max", "Nike", 4999, true))
	require.NoError(t, err)
	assert.Equal(t, "Product added successfully (Demo Mode)", created.Message)
	assert.Equal(t, "Air Max", created.Product.Name)
	assert.True(t, created.Product.Price.Equal(decimal.NewFromInt(4999)))
	assert.Equal(t, "shoes", created.Product.Category)

	_, err = c.CreateProduct(ctx, draft("Suede", "Puma", 2999, false))
	require.NoError(t, err)

	all, err := c.ListProducts(ctx, storefront.ProductQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	featured := true
	list, err := c.ListProducts(ctx, storefront.ProductQuery{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Air Max", list[0].Name)

	list, err = c.ListProducts(ctx, storefront.ProductQuery{Brand: "pum"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Puma", list[0].Brand)

	require.NoError(t, c.DeleteProduct(ctx, created.Product.ID))

	err = c.DeleteProduct(ctx, created.Product.ID)
	var nf *storefront.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "product", nf.Resource)
	assert.Equal(t, created.Product.ID, nf.ID)
}

func TestClient_CreateProductRejected(t *testing.T) {
	c := newBackend(t)

	d := draft("Air Max", "Nike", 4999, false)
	d.Price = decimal.NewFromInt(-1)
	_, err := c.CreateProduct(context.Background(), d)

	var appErr *storefront.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Price cannot be negative", appErr.Message)
}

func TestClient_OrderLifecycle(t *testing.T) {
	c := newBackend(t)
	ctx := context.Background()

	placed, err := c.PlaceOrder(ctx, storefront.OrderSubmission{
		Customer: storefront.CustomerForm{
			CustomerName: "Asha Rao",
			Email:        "asha@example.com",
			Phone:        "9876543210",
			Address:      "12 MG Road",
			City:         "Pune",
			Pincode:      "411001",
		},
		Items: []cart.Entry{
			{ProductID: "p1", Name: "Air Max", Brand: "Nike", Price: decimal.NewFromInt(1999), Quantity: 2},
			{ProductID: "p2", Name: "Suede", Brand: "Puma", Price: decimal.NewFromInt(2499), Quantity: 1},
		},
		Total: decimal.NewFromInt(6497),
	})
	require.NoError(t, err)
	assert.Len(t, placed.ID, len("ORD-")+8)
	assert.True(t, placed.Total.Equal(decimal.NewFromInt(6497)))
	assert.Equal(t, "Order placed successfully (Demo Mode)", placed.Message)

	orders, err := c.RecentOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, placed.ID, orders[0].ID)
	assert.Equal(t, "pending", orders[0].Status)
	assert.Equal(t, "Pune", orders[0].City)
	require.Len(t, orders[0].Items, 2)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)

	require.NoError(t, c.UpdateOrderStatus(ctx, placed.ID, "shipped"))

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Equal(t, int64(0), stats.PendingOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(6497)))

	err = c.UpdateOrderStatus(ctx, placed.ID, "lost")
	var appErr *storefront.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid order status: lost", appErr.Message)

	err = c.UpdateOrderStatus(ctx, "ORD-missing1", "shipped")
	var nf *storefront.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "order", nf.Resource)
}

func TestClient_PlaceOrderMissingFields(t *testing.T) {
	c := newBackend(t)

	_, err := c.PlaceOrder(context.Background(), storefront.OrderSubmission{
		Customer: storefront.CustomerForm{CustomerName: "Asha"},
		Items:    []cart.Entry{{Name: "Air Max", Price: decimal.NewFromInt(1), Quantity: 1}},
	})

	var appErr *storefront.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "Missing required fields")
}

func TestClient_Login(t *testing.T) {
	c := newBackend(t)
	ctx := context.Background()

	admin, err := c.Login(ctx, "sujal", "pass123")
	require.NoError(t, err)
	assert.Equal(t, "sujal", admin.Username)
	assert.Equal(t, "admin", admin.Role)

	_, err = c.Login(ctx, "sujal", "wrong")
	var appErr *storefront.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}

// ==================== Error mapping ====================

func TestClient_ErrorMapping(t *testing.T) {
	ctx := context.Background()

	t.Run("success false on 200 is an application error", func(t *testing.T) {
		c := stubServer(t, http.StatusOK, `{"success":false,"message":"Server error"}`)
		_, err := c.Stats(ctx)

		var appErr *storefront.ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Server error", appErr.Message)
	})

	t.Run("empty message falls back to status text", func(t *testing.T) {
		c := stubServer(t, http.StatusInternalServerError, `{"success":false}`)
		_, err := c.RecentOrders(ctx)

		var appErr *storefront.ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Internal Server Error", appErr.Message)
	})

	t.Run("non json body is a transport error", func(t *testing.T) {
		c := stubServer(t, http.StatusBadGateway, `<html>bad gateway</html>`)
		_, err := c.ListProducts(ctx, storefront.ProductQuery{})

		var te *storefront.TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, "list products", te.Op)
		assert.True(t, IsUnavailable(err))
	})

	t.Run("unreachable backend is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := newClient(t, url).ListProducts(ctx, storefront.ProductQuery{})
		assert.True(t, IsUnavailable(err))
	})

	t.Run("cancelled context is a transport error", func(t *testing.T) {
		c := stubServer(t, http.StatusOK, `{"success":true,"products":[]}`)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := c.ListProducts(cctx, storefront.ProductQuery{})
		assert.True(t, IsUnavailable(err))
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("404 without resource is an application error", func(t *testing.T) {
		c := stubServer(t, http.StatusNotFound, `{"success":false,"message":"nope"}`)
		_, err := c.Stats(ctx)

		var appErr *storefront.ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
		assert.False(t, IsUnavailable(err))
	})
}

func TestClient_ListProductsQuery(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"success":true,"products":[{"id":"p1","name":"A","brand":"Nike","price":1999.5}]}`))
	}))
	t.Cleanup(srv.Close)

	featured := false
	products, err := newClient(t, srv.URL).ListProducts(context.Background(), storefront.ProductQuery{
		Brand:    "new balance",
		Featured: &featured,
		Category: "shoes",
	})
	require.NoError(t, err)

	assert.Equal(t, "brand=new+balance&category=shoes&featured=false", got)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("1999.5")))
}
