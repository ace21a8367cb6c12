package handler

import (
	"net/http"

	orderapp "github.com/fashionstop/storefront/internal/application/order"
	"github.com/fashionstop/storefront/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles checkout and the admin order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderapp.OrderService
	demoMode     bool
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderapp.OrderService, demoMode bool) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		demoMode:     demoMode,
	}
}

// Place handles POST /api/orders
func (h *OrderHandler) Place(c *gin.Context) {
	var req orderapp.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Place(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, "", "Error placing order")
		return
	}

	c.JSON(http.StatusCreated, dto.OrderResponse{
		Success: true,
		Message: withDemoSuffix("Order placed successfully", h.demoMode),
		Order:   dto.FromOrder(*order),
	})
}

// List handles GET /api/admin/orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.Recent(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "", "Error fetching orders")
		return
	}

	c.JSON(http.StatusOK, dto.OrdersResponse{
		Success: true,
		Orders:  dto.FromOrders(orders),
	})
}

// UpdateStatus handles PUT /api/admin/orders/:orderId
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req orderapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("orderId"), req)
	if err != nil {
		h.HandleError(c, err, "Order not found", "Error updating order")
		return
	}

	c.JSON(http.StatusOK, dto.OrderResponse{
		Success: true,
		Message: withDemoSuffix("Order status updated successfully", h.demoMode),
		Order:   dto.FromOrder(*order),
	})
}

// Stats handles GET /api/admin/stats
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.orderService.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "", "Error fetching stats")
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		Success: true,
		Stats:   dto.FromStats(*stats),
	})
}
