package services

import (
	"errors"
	"fmt"
	"strings"

	"invoicing-api/internal/models"
	"invoicing-api/internal/repositories"
)

// Service level errors. Handlers translate them to HTTP statuses.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("forbidden")
	ErrCompanyNotFound    = errors.New("company not found")
)

// CompanyNotFoundError reports an unknown tax identification number.
// It matches both ErrCompanyNotFound and repositories.ErrNotFound.
type CompanyNotFoundError struct {
	TaxID string
}

func (e *CompanyNotFoundError) Error() string {
	return fmt.Sprintf("company with tax id %s not found", e.TaxID)
}

// Is implements errors.Is matching
func (e *CompanyNotFoundError) Is(target error) bool {
	return target == ErrCompanyNotFound || target == repositories.ErrNotFound
}

// FieldError describes one rejected field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every rejected field of a request. It matches ErrInvalidInput.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is implements errors.Is matching
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// invalidField builds a single field validation error
func invalidField(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// fromModelError lifts a model validation failure into the service error space
func fromModelError(err error) error {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return invalidField(ve.Field, err.Error())
	}
	return err
}
