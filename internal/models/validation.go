package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	spaceRegex    = regexp.MustCompile(`\s+`)
)

// SanitizeString collapses runs of whitespace and trims the string
func SanitizeString(s string) string {
	return spaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// ValidateRequired checks if a required string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fieldName + " is required",
			Value:   value,
		}
	}
	return nil
}

// ValidateStringLength validates string length constraints
func ValidateStringLength(value, fieldName string, minLength, maxLength int) error {
	length := len([]rune(strings.TrimSpace(value)))

	if minLength > 0 && length < minLength {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be at least %d characters", fieldName, minLength),
			Value:   value,
		}
	}

	if maxLength > 0 && length > maxLength {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s cannot exceed %d characters", fieldName, maxLength),
			Value:   value,
		}
	}

	return nil
}

// ValidateEmail validates email format. Empty values are accepted.
func ValidateEmail(email, fieldName string) error {
	if email == "" {
		return nil
	}
	if !emailRegex.MatchString(email) {
		return &ValidationError{
			Field:   fieldName,
			Message: "Invalid email format",
			Value:   email,
		}
	}
	return nil
}

// ValidateUsername checks the allowed username alphabet
func ValidateUsername(username string) error {
	if err := ValidateStringLength(username, "username", 3, 50); err != nil {
		return err
	}
	if !usernameRegex.MatchString(username) {
		return &ValidationError{
			Field:   "username",
			Message: "username may only contain letters, digits, '.', '_' and '-'",
			Value:   username,
		}
	}
	return nil
}

// ValidateNonNegative rejects amounts below zero
func ValidateNonNegative(value decimal.Decimal, fieldName string) error {
	if value.IsNegative() {
		return &ValidationError{
			Field:   fieldName,
			Message: fieldName + " cannot be negative",
			Value:   value.String(),
		}
	}
	return nil
}
