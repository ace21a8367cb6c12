package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ProductInput {
	op := decimal.NewFromInt(8999)
	return ProductInput{
		Name:          "Air Max 270",
		Brand:         "Nike",
		Price:         decimal.NewFromInt(1999),
		OriginalPrice: &op,
		Image:         "https://static.nike.com/air-max-270.png",
		Badge:         "BESTSELLER",
		Sizes:         []string{"7", "8", "9"},
		Colors:        []string{"Black"},
		Featured:      true,
	}
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("p1", validInput())
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "p1", product.ID)
		assert.Equal(t, "Air Max 270", product.Name)
		assert.Equal(t, "Nike", product.Brand)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(1999)))
		assert.Equal(t, DefaultCategory, product.Category)
		assert.True(t, product.InStock)
		assert.True(t, product.Featured)
		assert.False(t, product.CreatedAt.IsZero())
	})

	t.Run("keeps explicit category and stock flag", func(t *testing.T) {
		in := validInput()
		in.Category = "sandals"
		inStock := false
		in.InStock = &inStock

		product, err := NewProduct("p1", in)
		require.NoError(t, err)
		assert.Equal(t, "sandals", product.Category)
		assert.False(t, product.InStock)
	})

	t.Run("does not share slices with the input", func(t *testing.T) {
		in := validInput()
		product, err := NewProduct("p1", in)
		require.NoError(t, err)

		in.Sizes[0] = "42"
		assert.Equal(t, "7", product.Sizes[0])
	})

	tests := []struct {
		name    string
		mutate  func(*ProductInput)
		wantErr string
	}{
		{"empty name", func(in *ProductInput) { in.Name = "  " }, "name cannot be empty"},
		{"empty brand", func(in *ProductInput) { in.Brand = "" }, "brand cannot be empty"},
		{"empty image", func(in *ProductInput) { in.Image = "" }, "image cannot be empty"},
		{"negative price", func(in *ProductInput) { in.Price = decimal.NewFromInt(-1) }, "cannot be negative"},
		{"negative original price", func(in *ProductInput) {
			op := decimal.NewFromInt(-5)
			in.OriginalPrice = &op
		}, "cannot be negative"},
	}
	for _, tt := range tests {
		t.Run("fails with "+tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := NewProduct("p1", in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("fails with empty id", func(t *testing.T) {
		_, err := NewProduct("", validInput())
		require.Error(t, err)
	})
}

func TestProduct_Apply(t *testing.T) {
	t.Run("updates only provided fields", func(t *testing.T) {
		product, err := NewProduct("p1", validInput())
		require.NoError(t, err)
		before := product.UpdatedAt

		price := decimal.NewFromInt(1499)
		featured := false
		time.Sleep(time.Millisecond)
		err = product.Apply(ProductPatch{Price: &price, Featured: &featured})
		require.NoError(t, err)

		assert.True(t, product.Price.Equal(price))
		assert.False(t, product.Featured)
		assert.Equal(t, "Air Max 270", product.Name)
		assert.True(t, product.UpdatedAt.After(before))
	})

	t.Run("invalid patch leaves product untouched", func(t *testing.T) {
		product, err := NewProduct("p1", validInput())
		require.NoError(t, err)

		empty := ""
		price := decimal.NewFromInt(10)
		err = product.Apply(ProductPatch{Price: &price, Name: &empty})
		require.Error(t, err)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(1999)))
	})

	t.Run("blank category falls back to default", func(t *testing.T) {
		product, err := NewProduct("p1", validInput())
		require.NoError(t, err)

		blank := " "
		require.NoError(t, product.Apply(ProductPatch{Category: &blank}))
		assert.Equal(t, DefaultCategory, product.Category)
	})
}

func TestProduct_Clone(t *testing.T) {
	product, err := NewProduct("p1", validInput())
	require.NoError(t, err)

	clone := product.Clone()
	clone.Sizes[0] = "13"
	*clone.OriginalPrice = decimal.NewFromInt(1)

	assert.Equal(t, "7", product.Sizes[0])
	assert.True(t, product.OriginalPrice.Equal(decimal.NewFromInt(8999)))
}

func TestDemoID(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	id := DemoID(at)

	assert.Equal(t, "demo1700000000123", id)
	assert.True(t, IsDemoID(id))
	assert.False(t, IsDemoID("V1StGXR8_Z5jdHi6B-myT"))
}

func TestProductFilter_Matches(t *testing.T) {
	product, err := NewProduct("p1", validInput())
	require.NoError(t, err)

	yes, no := true, false
	tests := []struct {
		name   string
		filter ProductFilter
		want   bool
	}{
		{"empty filter", ProductFilter{}, true},
		{"brand case-insensitive", ProductFilter{Brand: "NIK"}, true},
		{"brand mismatch", ProductFilter{Brand: "puma"}, false},
		{"featured match", ProductFilter{Featured: &yes}, true},
		{"featured mismatch", ProductFilter{Featured: &no}, false},
		{"category exact", ProductFilter{Category: "shoes"}, true},
		{"category mismatch", ProductFilter{Category: "Shoes"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(product))
		})
	}
}
