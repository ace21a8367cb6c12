package router

import (
	"github.com/fashionstop/storefront/internal/interfaces/http/handler"
)

// Handlers bundles the HTTP handlers served under /api
type Handlers struct {
	Products *handler.ProductHandler
	Orders   *handler.OrderHandler
	Auth     *handler.AuthHandler
	System   *handler.SystemHandler
}

// StorefrontGroups builds the public and admin route groups.
//
// Admin routes carry no authentication: the login endpoint only verifies
// credentials and the console gates itself on the client side.
func StorefrontGroups(h Handlers) []*DomainGroup {
	system := NewDomainGroup("")
	system.GET("/status", h.System.Status)

	catalog := NewDomainGroup("/products")
	catalog.GET("", h.Products.List)

	orders := NewDomainGroup("/orders")
	orders.POST("", h.Orders.Place)

	admin := NewDomainGroup("/admin")
	admin.POST("/login", h.Auth.Login)
	admin.GET("/stats", h.Orders.Stats)
	admin.Group("/products").
		POST("", h.Products.Create).
		PUT("/:id", h.Products.Update).
		DELETE("/:id", h.Products.Delete)
	admin.Group("/orders").
		GET("", h.Orders.List).
		PUT("/:orderId", h.Orders.UpdateStatus)

	return []*DomainGroup{system, catalog, orders, admin}
}

// RegisterStorefront mounts the storefront API and the root health check
func RegisterStorefront(r *Router, h Handlers) {
	r.engine.GET("/health", h.System.Health)
	for _, g := range StorefrontGroups(h) {
		r.Register(g)
	}
	r.Setup()
}
