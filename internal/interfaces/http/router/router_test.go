package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Empty(t, r.registrars)
	assert.Equal(t, "/api", APIBase)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	r.Register(group).Setup()

	w := serve(engine, http.MethodGet, "/api/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("empty prefix mounts on the parent path", func(t *testing.T) {
		engine := gin.New()
		NewDomainGroup("").GET("/status", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		}).RegisterRoutes(engine.Group("/api"))

		w := serve(engine, http.MethodGet, "/api/status")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("registers each method", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("/test")
		ok := func(c *gin.Context) { c.String(http.StatusOK, c.Request.Method) }
		g.GET("/items", ok).POST("/items", ok).PUT("/items/:id", ok).DELETE("/items/:id", ok)
		g.RegisterRoutes(engine.Group("/api"))

		tests := []struct {
			method string
			path   string
		}{
			{http.MethodGet, "/api/test/items"},
			{http.MethodPost, "/api/test/items"},
			{http.MethodPut, "/api/test/items/1"},
			{http.MethodDelete, "/api/test/items/1"},
		}
		for _, tt := range tests {
			w := serve(engine, tt.method, tt.path)
			assert.Equal(t, http.StatusOK, w.Code, "%s %s", tt.method, tt.path)
			assert.Equal(t, tt.method, w.Body.String())
		}
	})

	t.Run("applies middleware to subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("/admin")
		g.Use(func(c *gin.Context) {
			c.Header("X-Test-Middleware", "applied")
			c.Next()
		})
		g.Group("/orders").GET("", func(c *gin.Context) {
			c.String(http.StatusOK, "orders")
		})
		g.RegisterRoutes(engine.Group("/api"))

		w := serve(engine, http.MethodGet, "/api/admin/orders")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "orders", w.Body.String())
		assert.Equal(t, "applied", w.Header().Get("X-Test-Middleware"))
	})
}
