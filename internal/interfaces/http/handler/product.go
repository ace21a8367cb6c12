package handler

import (
	"net/http"

	catalogapp "github.com/fashionstop/storefront/internal/application/catalog"
	"github.com/fashionstop/storefront/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles the product catalog endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
	demoMode       bool
}

// NewProductHandler creates a new ProductHandler. demoMode marks write
// messages when the backend keeps data only in memory.
func NewProductHandler(productService *catalogapp.ProductService, demoMode bool) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		demoMode:       demoMode,
	}
}

// List handles GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid product filter: "+err.Error())
		return
	}

	products, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err, "", "Error fetching products")
		return
	}

	c.JSON(http.StatusOK, dto.ProductsResponse{
		Success:  true,
		Products: dto.FromProducts(products),
	})
}

// Create handles POST /api/admin/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, "", "Error adding product")
		return
	}

	c.JSON(http.StatusCreated, dto.ProductResponse{
		Success: true,
		Message: withDemoSuffix("Product added successfully", h.demoMode),
		Product: dto.FromProduct(*product),
	})
}

// Update handles PUT /api/admin/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err, "Product not found", "Error updating product")
		return
	}

	c.JSON(http.StatusOK, dto.ProductResponse{
		Success: true,
		Message: withDemoSuffix("Product updated successfully", h.demoMode),
		Product: dto.FromProduct(*product),
	})
}

// Delete handles DELETE /api/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err, "Product not found", "Error deleting product")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: withDemoSuffix("Product deleted successfully", h.demoMode),
	})
}
