package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/secuaas/NetSentinel/internal/core/domain"
	"github.com/secuaas/NetSentinel/internal/core/port"
	"github.com/secuaas/NetSentinel/internal/core/service"
)

type AuthHandler struct {
	authService port.AuthService
}

func NewAuthHandler(authService port.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login
// @Summary User login
// @Description Authenticates a user with username and password, returns a signed bearer token.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Login credentials"
// @Success 200 {object} domain.LoginResponse
// @Failure 400 {object} map[string]string "error: Invalid request format"
// @Failure 401 {object} map[string]string "error: Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		writeError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, response)
}

// Me
// @Summary Current user
// @Description Returns the user behind the presented bearer token.
// @Tags Authentication
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} map[string]string "error: Authorization required"
// @Security BearerAuth
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	value, exists := c.Get(claimsContextKey)
	claims, ok := value.(*domain.TokenClaims)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), claims.Username)
	if err != nil {
		writeError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, user)
}

const claimsContextKey = "auth_claims"

// AuthMiddleware validates the bearer token and stores its claims on the
// request context.
func (h *AuthHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			c.Abort()
			return
		}

		claims, err := h.authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}
