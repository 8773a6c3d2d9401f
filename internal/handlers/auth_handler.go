package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicing-api/internal/dto"
	"invoicing-api/internal/mappers"
	"invoicing-api/internal/middleware"
	"invoicing-api/internal/repositories"
	"invoicing-api/internal/services"
)

// AuthHandler issues and refreshes tokens
type AuthHandler struct {
	authService *middleware.AuthService
	userService services.UserService
	errors      *ErrorMapper
	users       mappers.UserMapper
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *middleware.AuthService, userService services.UserService, errors *ErrorMapper) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService, errors: errors}
}

// Login godoc
// @Summary Log in
// @Description Exchanges a username and password for a bearer token
// @Tags auth-controller
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.bindError(c, err)
		return
	}
	if req.Username == "" || req.Password == "" {
		h.errors.Respond(c, services.ErrInvalidCredentials)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	token, expiresAt, err := h.authService.GenerateToken(user)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      h.users.ToDto(*user),
	})
}

// RefreshToken godoc
// @Summary Refresh a token
// @Description Exchanges a valid token for a new one with a fresh expiry
// @Tags auth-controller
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest true "Current token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.bindError(c, err)
		return
	}

	token, expiresAt, claims, err := h.authService.RefreshToken(req.Token)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	// deleted accounts cannot keep refreshing
	user, err := h.userService.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		if repositories.IsNotFound(err) {
			err = services.ErrInvalidCredentials
		}
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      *user,
	})
}

// GetCurrentUser godoc
// @Summary Current user
// @Tags auth-controller
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserDto
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	claims, ok := middleware.GetUserFromContext(c)
	if !ok {
		h.errors.Respond(c, services.ErrInvalidCredentials)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
