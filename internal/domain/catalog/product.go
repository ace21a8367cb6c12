package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	// DefaultCategory is assigned when a product is created without a category
	DefaultCategory = "shoes"
	// DemoIDPrefix marks products that only live in an ephemeral store
	DemoIDPrefix = "demo"
)

// Product is an item of the storefront catalog
type Product struct {
	shared.BaseEntity
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
}

// ProductInput carries the fields accepted when creating a product
type ProductInput struct {
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
	InStock       *bool
	Featured      bool
}

// ProductPatch carries the fields that may be changed on an existing
// product. Nil fields are left untouched.
type ProductPatch struct {
	Name          *string
	Brand         *string
	Price         *decimal.Decimal
	OriginalPrice *decimal.Decimal
	Image         *string
	Category      *string
	Badge         *string
	Description   *string
	Sizes         []string
	Colors        []string
	InStock       *bool
	Featured      *bool
}

// NewProduct creates a new product with the given id
func NewProduct(id string, in ProductInput) (*Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, shared.NewDomainError("INVALID_ID", "Product id cannot be empty")
	}
	name := strings.TrimSpace(in.Name)
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	brand := strings.TrimSpace(in.Brand)
	if err := validateBrand(brand); err != nil {
		return nil, err
	}
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}
	if in.OriginalPrice != nil {
		if err := validatePrice(*in.OriginalPrice); err != nil {
			return nil, err
		}
	}
	image := strings.TrimSpace(in.Image)
	if image == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Product image cannot be empty")
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultCategory
	}
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}

	return &Product{
		BaseEntity:    shared.NewBaseEntity(id),
		Name:          name,
		Brand:         brand,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Image:         image,
		Category:      category,
		Badge:         strings.TrimSpace(in.Badge),
		Description:   in.Description,
		Sizes:         cloneStrings(in.Sizes),
		Colors:        cloneStrings(in.Colors),
		InStock:       inStock,
		Featured:      in.Featured,
	}, nil
}

// Apply updates the product with the non-nil fields of the patch
func (p *Product) Apply(patch ProductPatch) error {
	next := p.Clone()

	if patch.Name != nil {
		next.Name = strings.TrimSpace(*patch.Name)
		if err := validateProductName(next.Name); err != nil {
			return err
		}
	}
	if patch.Brand != nil {
		next.Brand = strings.TrimSpace(*patch.Brand)
		if err := validateBrand(next.Brand); err != nil {
			return err
		}
	}
	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return err
		}
		next.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		if err := validatePrice(*patch.OriginalPrice); err != nil {
			return err
		}
		op := *patch.OriginalPrice
		next.OriginalPrice = &op
	}
	if patch.Image != nil {
		if strings.TrimSpace(*patch.Image) == "" {
			return shared.NewDomainError("INVALID_IMAGE", "Product image cannot be empty")
		}
		next.Image = strings.TrimSpace(*patch.Image)
	}
	if patch.Category != nil {
		next.Category = strings.TrimSpace(*patch.Category)
		if next.Category == "" {
			next.Category = DefaultCategory
		}
	}
	if patch.Badge != nil {
		next.Badge = strings.TrimSpace(*patch.Badge)
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.Sizes != nil {
		next.Sizes = cloneStrings(patch.Sizes)
	}
	if patch.Colors != nil {
		next.Colors = cloneStrings(patch.Colors)
	}
	if patch.InStock != nil {
		next.InStock = *patch.InStock
	}
	if patch.Featured != nil {
		next.Featured = *patch.Featured
	}

	*p = next
	p.Touch()
	return nil
}

// Clone returns a deep copy of the product. Slices and the original price
// are not shared with the receiver.
func (p Product) Clone() Product {
	out := p
	out.Sizes = cloneStrings(p.Sizes)
	out.Colors = cloneStrings(p.Colors)
	if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		out.OriginalPrice = &op
	}
	return out
}

// IsDemo reports whether the product id carries the demo prefix
func (p *Product) IsDemo() bool {
	return IsDemoID(p.ID)
}

// IsDemoID reports whether id was issued for an ephemeral product
func IsDemoID(id string) bool {
	return strings.HasPrefix(id, DemoIDPrefix)
}

// DemoID builds a demo product id from a timestamp
func DemoID(at time.Time) string {
	return DemoIDPrefix + strconv.FormatInt(at.UnixMilli(), 10)
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validateBrand(brand string) error {
	if brand == "" {
		return shared.NewDomainError("INVALID_BRAND", "Product brand cannot be empty")
	}
	if len(brand) > 100 {
		return shared.NewDomainError("INVALID_BRAND", "Product brand cannot exceed 100 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
