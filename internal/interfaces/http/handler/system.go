package handler

import (
	"net/http"
	"time"

	"github.com/fashionstop/storefront/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SystemHandler serves the health and status probes
type SystemHandler struct {
	BaseHandler
	demoMode bool
	now      func() time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(demoMode bool) *SystemHandler {
	return &SystemHandler{
		demoMode: demoMode,
		now:      time.Now,
	}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "OK",
		Timestamp: h.timestamp(),
	})
}

// Status handles GET /api/status
func (h *SystemHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:    "OK",
		DemoMode:  h.demoMode,
		Timestamp: h.timestamp(),
	})
}

func (h *SystemHandler) timestamp() string {
	return h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
