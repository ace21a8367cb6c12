package models

import (
	"time"

	"github.com/fashionstop/storefront/internal/domain/identity"
)

// AdminModel is the persistence model for an admin account.
type AdminModel struct {
	Username  string    `gorm:"type:varchar(100);primaryKey"`
	Password  string    `gorm:"type:varchar(200);not null"`
	Role      string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (AdminModel) TableName() string {
	return "admins"
}

// ToDomain converts the persistence model to a domain Admin.
func (m *AdminModel) ToDomain() *identity.Admin {
	return &identity.Admin{
		Username:  m.Username,
		Password:  m.Password,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

// AdminModelFromDomain creates a new persistence model from a domain Admin.
func AdminModelFromDomain(a *identity.Admin) *AdminModel {
	return &AdminModel{
		Username:  a.Username,
		Password:  a.Password,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
	}
}
