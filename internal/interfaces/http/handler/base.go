package handler

import (
	"errors"
	"net/http"

	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/fashionstop/storefront/internal/infrastructure/logger"
	"github.com/fashionstop/storefront/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey is the header carrying the request ID
const RequestIDKey = "X-Request-ID"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader(RequestIDKey)
}

// withDemoSuffix marks write messages of the ephemeral backend
func withDemoSuffix(message string, demoMode bool) string {
	if demoMode {
		return message + dto.DemoModeSuffix
	}
	return message
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts service errors to HTTP responses. Domain errors keep
// their message; a not-found error is reported with notFoundMessage. Any
// other error is logged and answered with fallback.
func (h *BaseHandler) HandleError(c *gin.Context, err error, notFoundMessage, fallback string) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		message := domainErr.Message
		if code == dto.ErrCodeNotFound && notFoundMessage != "" {
			message = notFoundMessage
		}
		h.Error(c, dto.GetHTTPStatus(code), code, message)
		return
	}

	logger.GetGinLogger(c).Error(fallback, zap.Error(err))
	_ = c.Error(err)
	h.InternalError(c, fallback)
}
