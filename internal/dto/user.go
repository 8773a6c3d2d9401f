package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserDto is the wire form of a user. It never carries credentials.
type UserDto struct {
	ID       uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Username string    `json:"username" example:"pawel"`
	Email    string    `json:"email" example:"pawel@example.com"`
	Role     string    `json:"role" example:"user"`
}

// CreateUserRequest registers a new account
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"pawel"`
	Email    string `json:"email" validate:"omitempty,email" example:"pawel@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"s3cretpassword"`
}

// LoginRequest carries credentials for POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"pawel"`
	Password string `json:"password" validate:"required" example:"s3cretpassword"`
}

// RefreshRequest carries a still valid token to exchange
type RefreshRequest struct {
	Token string `json:"token" validate:"required"`
}

// TokenResponse is returned by successful authentication
type TokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType" example:"Bearer"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserDto   `json:"user"`
}
