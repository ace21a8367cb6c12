package models

import (
	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name          string              `gorm:"type:varchar(200);not null"`
	Brand         string              `gorm:"type:varchar(100);not null;index"`
	Price         decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	OriginalPrice decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Image         string              `gorm:"type:text;not null"`
	Category      string              `gorm:"type:varchar(50);not null;index"`
	Badge         string              `gorm:"type:varchar(50)"`
	Description   string              `gorm:"type:text"`
	Sizes         StringList          `gorm:"type:text"`
	Colors        StringList          `gorm:"type:text"`
	InStock       bool                `gorm:"not null"`
	Featured      bool                `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	p := &catalog.Product{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:        m.Name,
		Brand:       m.Brand,
		Price:       m.Price,
		Image:       m.Image,
		Category:    m.Category,
		Badge:       m.Badge,
		Description: m.Description,
		Sizes:       append([]string{}, m.Sizes...),
		Colors:      append([]string{}, m.Colors...),
		InStock:     m.InStock,
		Featured:    m.Featured,
	}
	if m.OriginalPrice.Valid {
		op := m.OriginalPrice.Decimal
		p.OriginalPrice = &op
	}
	return p
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Brand = p.Brand
	m.Price = p.Price
	m.OriginalPrice = decimal.NullDecimal{}
	if p.OriginalPrice != nil {
		m.OriginalPrice = decimal.NewNullDecimal(*p.OriginalPrice)
	}
	m.Image = p.Image
	m.Category = p.Category
	m.Badge = p.Badge
	m.Description = p.Description
	m.Sizes = StringList(append([]string{}, p.Sizes...))
	m.Colors = StringList(append([]string{}, p.Colors...))
	m.InStock = p.InStock
	m.Featured = p.Featured
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
