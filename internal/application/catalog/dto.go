package catalog

import (
	"time"

	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product.
// Prices accept JSON numbers or numeric strings.
type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required,max=200"`
	Brand         string           `json:"brand" binding:"required,max=100"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Image         string           `json:"image" binding:"required"`
	Category      string           `json:"category" binding:"max=50"`
	Badge         string           `json:"badge" binding:"max=50"`
	Description   string           `json:"description" binding:"max=2000"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
	InStock       *bool            `json:"inStock"`
	Featured      bool             `json:"featured"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,max=200"`
	Brand         *string          `json:"brand" binding:"omitempty,max=100"`
	Price         *decimal.Decimal `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Image         *string          `json:"image"`
	Category      *string          `json:"category" binding:"omitempty,max=50"`
	Badge         *string          `json:"badge" binding:"omitempty,max=50"`
	Description   *string          `json:"description" binding:"omitempty,max=2000"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
	InStock       *bool            `json:"inStock"`
	Featured      *bool            `json:"featured"`
}

// ProductListFilter narrows the product listing
type ProductListFilter struct {
	Brand    string `form:"brand"`
	Featured *bool  `form:"featured"`
	Category string `form:"category"`
}

// ProductResponse represents a product returned by the service
type ProductResponse struct {
	ID            string
	Name          string
	Brand         string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Image         string
	Category      string
	Badge         string
	Description   string
	Sizes         []string
	Colors        []string
	InStock       bool
	Featured      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	clone := p.Clone()
	sizes := clone.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	colors := clone.Colors
	if colors == nil {
		colors = []string{}
	}
	return ProductResponse{
		ID:            clone.ID,
		Name:          clone.Name,
		Brand:         clone.Brand,
		Price:         clone.Price,
		OriginalPrice: clone.OriginalPrice,
		Image:         clone.Image,
		Category:      clone.Category,
		Badge:         clone.Badge,
		Description:   clone.Description,
		Sizes:         sizes,
		Colors:        colors,
		InStock:       clone.InStock,
		Featured:      clone.Featured,
		CreatedAt:     clone.CreatedAt,
		UpdatedAt:     clone.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}

func (r CreateProductRequest) toInput() catalog.ProductInput {
	return catalog.ProductInput{
		Name:          r.Name,
		Brand:         r.Brand,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Image:         r.Image,
		Category:      r.Category,
		Badge:         r.Badge,
		Description:   r.Description,
		Sizes:         r.Sizes,
		Colors:        r.Colors,
		InStock:       r.InStock,
		Featured:      r.Featured,
	}
}

func (r UpdateProductRequest) toPatch() catalog.ProductPatch {
	return catalog.ProductPatch{
		Name:          r.Name,
		Brand:         r.Brand,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Image:         r.Image,
		Category:      r.Category,
		Badge:         r.Badge,
		Description:   r.Description,
		Sizes:         r.Sizes,
		Colors:        r.Colors,
		InStock:       r.InStock,
		Featured:      r.Featured,
	}
}
