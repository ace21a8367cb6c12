package persistence

import (
	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/fashionstop/storefront/internal/domain/identity"
	"github.com/fashionstop/storefront/internal/domain/order"
	"github.com/fashionstop/storefront/internal/infrastructure/config"
	"github.com/fashionstop/storefront/internal/infrastructure/persistence/memory"
	"go.uber.org/zap"
)

// Store is the storage capability of the API server: one set of
// repositories backed either by a database or by memory.
type Store interface {
	Products() catalog.ProductRepository
	Orders() order.OrderRepository
	Admins() identity.AdminRepository
	// Ephemeral reports whether writes are lost on restart (demo mode)
	Ephemeral() bool
	Close() error
}

// GormStore is the durable Store backed by a Database
type GormStore struct {
	db       *Database
	products *GormProductRepository
	orders   *GormOrderRepository
	admins   *GormAdminRepository
}

// NewGormStore creates a Store over db
func NewGormStore(db *Database) *GormStore {
	return &GormStore{
		db:       db,
		products: NewGormProductRepository(db.DB),
		orders:   NewGormOrderRepository(db.DB),
		admins:   NewGormAdminRepository(db.DB),
	}
}

// Products returns the product repository
func (s *GormStore) Products() catalog.ProductRepository { return s.products }

// Orders returns the order repository
func (s *GormStore) Orders() order.OrderRepository { return s.orders }

// Admins returns the admin repository
func (s *GormStore) Admins() identity.AdminRepository { return s.admins }

// Ephemeral is false for the database store
func (s *GormStore) Ephemeral() bool { return false }

// Close closes the database connection
func (s *GormStore) Close() error { return s.db.Close() }

// Database exposes the underlying connection for health checks
func (s *GormStore) Database() *Database { return s.db }

// OpenStore opens the store selected by cfg.Storage.Driver. When the
// database cannot be reached and storage.fallback_to_memory is set, the
// memory store is returned instead.
func OpenStore(cfg *config.Config, log *zap.Logger) (Store, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		log.Info("Using in-memory store (demo mode)")
		return memory.NewStore(), nil
	}

	db, err := NewDatabase(cfg, log)
	if err != nil {
		if cfg.Storage.FallbackToMemory {
			log.Warn("Database unavailable, falling back to in-memory store (demo mode)",
				zap.String("driver", cfg.Storage.Driver),
				zap.Error(err),
			)
			return memory.NewStore(), nil
		}
		return nil, err
	}

	if cfg.Storage.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	log.Info("Database connected", zap.String("driver", cfg.Storage.Driver))
	return NewGormStore(db), nil
}

var (
	_ Store = (*GormStore)(nil)
	_ Store = (*memory.Store)(nil)
)
