package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_Create(t *testing.T) {
	t.Run("creates product with defaults", func(t *testing.T) {
		s := newTestServer(t, false)

		w, body := s.do(t, http.MethodPost, "/api/admin/products", productBody("Air Max 270", "Nike", 1999, true))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Product added successfully", body["message"])
		product := body["product"].(map[string]any)
		assert.NotEmpty(t, product["id"])
		assert.Equal(t, float64(1999), product["price"])
		assert.Equal(t, "shoes", product["category"])
		assert.Equal(t, true, product["inStock"])
	})

	t.Run("demo mode suffix", func(t *testing.T) {
		s := newTestServer(t, true)

		_, body := s.do(t, http.MethodPost, "/api/admin/products", productBody("Chuck 70", "Converse", 4999, false))

		assert.Equal(t, "Product added successfully (Demo Mode)", body["message"])
		id := body["product"].(map[string]any)["id"].(string)
		assert.True(t, strings.HasPrefix(id, "demo"))
	})

	t.Run("price as numeric string", func(t *testing.T) {
		s := newTestServer(t, false)
		req := productBody("Suede", "Puma", 0, false)
		req["price"] = "1299.50"

		w, body := s.do(t, http.MethodPost, "/api/admin/products", req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1299.5, body["product"].(map[string]any)["price"])
	})

	t.Run("missing name", func(t *testing.T) {
		s := newTestServer(t, false)
		req := productBody("", "Nike", 10, false)

		w, body := s.do(t, http.MethodPost, "/api/admin/products", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, body["success"])
		assert.NotEmpty(t, body["message"])
	})

	t.Run("negative price", func(t *testing.T) {
		s := newTestServer(t, false)

		w, body := s.do(t, http.MethodPost, "/api/admin/products", productBody("X", "Nike", -1, false))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Price cannot be negative", body["message"])
	})

	t.Run("invalid json", func(t *testing.T) {
		s := newTestServer(t, false)

		w, body := s.do(t, http.MethodPost, "/api/admin/products", "invalid json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, body["success"])
	})
}

func TestProductHandler_List(t *testing.T) {
	s := newTestServer(t, false)
	s.do(t, http.MethodPost, "/api/admin/products", productBody("Air Max 270", "Nike", 1999, true))
	s.do(t, http.MethodPost, "/api/admin/products", productBody("Ultraboost", "Adidas", 2499, false))
	s.do(t, http.MethodPost, "/api/admin/products", productBody("Pegasus", "Nike", 2999, false))

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"all", "", 3},
		{"brand case-insensitive", "?brand=NIKE", 2},
		{"brand substring", "?brand=ida", 1},
		{"featured", "?featured=true", 1},
		{"not featured", "?featured=false", 2},
		{"category exact", "?category=shoes", 3},
		{"unknown category", "?category=bags", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := s.do(t, http.MethodGet, "/api/products"+tt.query, nil)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, true, body["success"])
			assert.Len(t, body["products"], tt.want)
		})
	}

	t.Run("invalid featured flag", func(t *testing.T) {
		w, _ := s.do(t, http.MethodGet, "/api/products?featured=maybe", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_UpdateAndDelete(t *testing.T) {
	s := newTestServer(t, false)
	_, created := s.do(t, http.MethodPost, "/api/admin/products", productBody("Air Max 270", "Nike", 1999, false))
	id := created["product"].(map[string]any)["id"].(string)

	t.Run("partial update", func(t *testing.T) {
		w, body := s.do(t, http.MethodPut, "/api/admin/products/"+id, map[string]any{"price": 1499, "badge": "SALE"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Product updated successfully", body["message"])
		product := body["product"].(map[string]any)
		assert.Equal(t, float64(1499), product["price"])
		assert.Equal(t, "SALE", product["badge"])
		assert.Equal(t, "Air Max 270", product["name"])
	})

	t.Run("update unknown product", func(t *testing.T) {
		w, body := s.do(t, http.MethodPut, "/api/admin/products/missing", map[string]any{"price": 1})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Product not found", body["message"])
	})

	t.Run("delete", func(t *testing.T) {
		w, body := s.do(t, http.MethodDelete, "/api/admin/products/"+id, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Product deleted successfully", body["message"])

		_, list := s.do(t, http.MethodGet, "/api/products", nil)
		assert.Empty(t, list["products"])
	})

	t.Run("delete unknown product", func(t *testing.T) {
		w, body := s.do(t, http.MethodDelete, "/api/admin/products/"+id, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Product not found", body["message"])
	})
}
