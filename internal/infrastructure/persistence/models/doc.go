// Package models contains GORM persistence models that map to database tables.
// They are separate from the domain entities so the domain layer stays free of
// ORM tags; each model converts to and from its entity with ToDomain/FromDomain.
//
// Tables:
//   - products: catalog products (product.go)
//   - orders, order_items: placed orders and their item snapshots (order.go)
//   - admins: admin panel accounts (admin.go)
package models
