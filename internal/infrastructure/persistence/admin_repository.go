package persistence

import (
	"context"
	"errors"

	"github.com/fashionstop/storefront/internal/domain/identity"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/fashionstop/storefront/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAdminRepository implements identity.AdminRepository using GORM
type GormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository creates a new GormAdminRepository
func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// FindByUsername finds an admin by username
func (r *GormAdminRepository) FindByUsername(ctx context.Context, username string) (*identity.Admin, error) {
	var model models.AdminModel
	if err := r.db.WithContext(ctx).First(&model, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates an admin
func (r *GormAdminRepository) Save(ctx context.Context, admin *identity.Admin) error {
	return r.db.WithContext(ctx).Save(models.AdminModelFromDomain(admin)).Error
}

// Ensure GormAdminRepository implements identity.AdminRepository
var _ identity.AdminRepository = (*GormAdminRepository)(nil)
