package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account allowed to sign in to the API
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NewUser creates a user with the default role
func NewUser(username, email string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the user data
func (u *User) Validate() error {
	if err := ValidateUsername(u.Username); err != nil {
		return err
	}
	if err := ValidateEmail(u.Email, "email"); err != nil {
		return err
	}
	if u.Role != RoleAdmin && u.Role != RoleUser {
		return &ValidationError{Field: "role", Message: "role must be one of: admin, user", Value: u.Role}
	}
	if u.PasswordHash == "" {
		return &ValidationError{Field: "password", Message: "password is required"}
	}
	return nil
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Roles returns the roles embedded in issued tokens
func (u *User) Roles() []string {
	return []string{u.Role}
}

// UpdateTimestamp updates the UpdatedAt timestamp
func (u *User) UpdateTimestamp() {
	u.UpdatedAt = time.Now().UTC()
}
