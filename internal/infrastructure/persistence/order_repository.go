package persistence

import (
	"context"
	"errors"

	"github.com/fashionstop/storefront/internal/domain/order"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/fashionstop/storefront/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements order.OrderRepository using GORM
type GormOrderRepository struct {
	db     *gorm.DB
	nextID shared.IDGenerator
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db, nextID: shared.NewOrderID}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindByID finds an order with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindRecent returns up to limit orders with their items, newest first
func (r *GormOrderRepository) FindRecent(ctx context.Context, limit int) ([]order.Order, error) {
	if limit <= 0 {
		limit = order.RecentOrdersLimit
	}
	var rows []models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Order("created_at DESC").
		Order("id").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]order.Order, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders, nil
}

// Save creates or updates an order. Items are written only together with a
// new order; after that only the order row changes.
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	model := models.OrderModelFromDomain(o)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.OrderModel{}).Where("id = ?", o.ID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return tx.Create(model).Error
		}
		return tx.Omit("Items").Save(model).Error
	})
}

// Count counts all orders
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts orders in the given status
func (r *GormOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SumRevenue sums the totals of all orders that are not cancelled
func (r *GormOrderRepository) SumRevenue(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Select("SUM(total)").
		Where("status <> ?", string(order.StatusCancelled)).
		Row().Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// NextID issues an "ORD-" prefixed id for a new order
func (r *GormOrderRepository) NextID() string {
	return r.nextID()
}

// Ensure GormOrderRepository implements order.OrderRepository
var _ order.OrderRepository = (*GormOrderRepository)(nil)
