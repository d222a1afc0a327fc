// Package handlers contains HTTP request handlers for the course platform.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Diatessaron/Best-Course-Ever/internal/metrics"
	"github.com/Diatessaron/Best-Course-Ever/internal/middleware"
	"github.com/Diatessaron/Best-Course-Ever/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, logger *slog.Logger, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
		metrics:     m,
	}
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary Create a new user
// @Description Register an account and return a signed JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.SignupRequest true "New account"
// @Success 201 {object} service.TokenResponse
// @Failure 400 {object} map[string]string
// @Router /auth [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case isSignupValidationError(err):
			h.metrics.SignupAttempts.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.metrics.SignupAttempts.WithLabelValues("error").Inc()
			h.logger.Error("signup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	h.metrics.SignupAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusCreated, response)
}

// Login godoc
// @Summary Authenticate user and return a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.metrics.LoginAttempts.WithLabelValues("failure").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.metrics.LoginAttempts.WithLabelValues("error").Inc()
		h.logger.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.metrics.LoginAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, response)
}

// Logout godoc
// @Summary Log out the current user
// @Description Revoke the presented token until its natural expiry
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.TokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.metrics.TokensRevoked.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// Me godoc
// @Summary Current principal
// @Description Return the authenticated identity for this request
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} middleware.Principal
// @Failure 401 {object} map[string]string
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	c.JSON(http.StatusOK, principal)
}

func isSignupValidationError(err error) bool {
	return errors.Is(err, service.ErrMissingFields) ||
		errors.Is(err, service.ErrInvalidEmail) ||
		errors.Is(err, service.ErrWeakPassword) ||
		errors.Is(err, service.ErrEmailTaken)
}
