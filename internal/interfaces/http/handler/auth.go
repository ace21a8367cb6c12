package handler

import (
	"net/http"

	identityapp "github.com/fashionstop/storefront/internal/application/identity"
	"github.com/fashionstop/storefront/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles the admin login endpoint. No token is issued; the
// client keeps the session itself.
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Invalid credentials")
		return
	}

	admin, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, "", "Server error")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Admin:   *admin,
	})
}
