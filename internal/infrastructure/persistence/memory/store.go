// Package memory provides ephemeral repositories used when the API server
// runs without a durable database (demo mode). Data is lost on restart.
package memory

import (
	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/fashionstop/storefront/internal/domain/identity"
	"github.com/fashionstop/storefront/internal/domain/order"
)

// Store groups the in-memory repositories
type Store struct {
	products *ProductRepository
	orders   *OrderRepository
	admins   *AdminRepository
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		products: NewProductRepository(),
		orders:   NewOrderRepository(),
		admins:   NewAdminRepository(),
	}
}

// Products returns the product repository
func (s *Store) Products() catalog.ProductRepository { return s.products }

// Orders returns the order repository
func (s *Store) Orders() order.OrderRepository { return s.orders }

// Admins returns the admin repository
func (s *Store) Admins() identity.AdminRepository { return s.admins }

// Ephemeral is always true for the memory store
func (s *Store) Ephemeral() bool { return true }

// Close is a no-op
func (s *Store) Close() error { return nil }
