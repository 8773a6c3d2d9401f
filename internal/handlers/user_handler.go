package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"invoicing-api/internal/dto"
	"invoicing-api/internal/middleware"
	"invoicing-api/internal/services"
)

// UserHandler handles account HTTP requests
type UserHandler struct {
	userService services.UserService
	errors      *ErrorMapper
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserService, errors *ErrorMapper) *UserHandler {
	return &UserHandler{userService: userService, errors: errors}
}

// Register godoc
// @Summary Register a user
// @Description Creates an account. The first registered account becomes an administrator.
// @Tags user-controller
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Account"
// @Success 201 {object} dto.UserDto
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.bindError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// ListUsers godoc
// @Summary List users
// @Tags user-controller
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserDto
// @Failure 403 {object} middleware.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get a user
// @Description Users may read their own account; administrators may read any
// @Tags user-controller
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID" format(uuid)
// @Success 200 {object} dto.UserDto
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	self := false
	if parsed, err := uuid.Parse(id); err == nil {
		id = parsed.String()
		claims, ok := middleware.GetUserFromContext(c)
		self = ok && claims.UserID == id
	}
	if !self && !middleware.IsAdmin(c) {
		h.errors.Respond(c, services.ErrForbidden)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags user-controller
// @Security BearerAuth
// @Param id path string true "User ID" format(uuid)
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
