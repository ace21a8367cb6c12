package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	catalogapp "github.com/fashionstop/storefront/internal/application/catalog"
	identityapp "github.com/fashionstop/storefront/internal/application/identity"
	orderapp "github.com/fashionstop/storefront/internal/application/order"
	"github.com/fashionstop/storefront/internal/domain/identity"
	"github.com/fashionstop/storefront/internal/infrastructure/persistence/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	engine *gin.Engine
	store  *memory.Store
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// newTestServer wires the handlers over a fresh memory store. demoMode
// controls the message suffix independently of the store.
func newTestServer(t *testing.T, demoMode bool) *testServer {
	t.Helper()
	store := memory.NewStore()
	log := zap.NewNop()

	admin, err := identity.NewAdmin("sujal", "pass123")
	require.NoError(t, err)
	require.NoError(t, store.Admins().Save(context.Background(), admin))

	products := NewProductHandler(catalogapp.NewProductService(store.Products(), log), demoMode)
	orders := NewOrderHandler(orderapp.NewOrderService(store.Orders(), store.Products(), nil, log), demoMode)
	auth := NewAuthHandler(identityapp.NewAuthService(store.Admins(), log))
	system := NewSystemHandler(demoMode)

	r := setupTestRouter()
	r.GET("/health", system.Health)
	r.GET("/api/status", system.Status)
	r.GET("/api/products", products.List)
	r.POST("/api/admin/products", products.Create)
	r.PUT("/api/admin/products/:id", products.Update)
	r.DELETE("/api/admin/products/:id", products.Delete)
	r.POST("/api/orders", orders.Place)
	r.GET("/api/admin/orders", orders.List)
	r.PUT("/api/admin/orders/:orderId", orders.UpdateStatus)
	r.GET("/api/admin/stats", orders.Stats)
	r.POST("/api/admin/login", auth.Login)

	return &testServer{engine: r, store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w, out
}

func productBody(name, brand string, price float64, featured bool) map[string]any {
	return map[string]any{
		"name":     name,
		"brand":    brand,
		"price":    price,
		"image":    "https://img.example/" + name,
		"sizes":    []string{"8", "9"},
		"featured": featured,
	}
}

func orderBody() map[string]any {
	return map[string]any{
		"customerName": "Asha Rao",
		"email":        "asha@example.com",
		"phone":        "9876543210",
		"address":      "12 MG Road",
		"city":         "Pune",
		"pincode":      "411001",
		"items": []map[string]any{
			{"productId": "p1", "name": "Air Max 270", "brand": "Nike", "price": 1999, "quantity": 2},
			{"productId": "p2", "name": "Ultraboost 22", "brand": "Adidas", "price": 2499, "quantity": 1},
		},
		"total": 6497,
	}
}
