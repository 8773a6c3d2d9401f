package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryErrorClassification(t *testing.T) {
	cause := errors.New("name is required")

	tests := []struct {
		name       string
		err        error
		notFound   bool
		duplicate  bool
		validation bool
	}{
		{"not found", NotFoundError("company", "123"), true, false, false},
		{"duplicate", DuplicateError("user", "username", "pawel"), false, true, false},
		{"validation", ValidationError("company", "", cause), false, false, true},
		{"wrapped not found", fmt.Errorf("service: %w", NotFoundError("invoice", "1")), true, false, false},
		{"plain error", errors.New("boom"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.duplicate, IsDuplicate(tt.err))
			assert.Equal(t, tt.validation, IsValidation(tt.err))
		})
	}
}

func TestValidationErrorKeepsCause(t *testing.T) {
	cause := errors.New("name is required")
	err := ValidationError("company", "", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "name is required")
}

func TestNotFoundErrorMessage(t *testing.T) {
	assert.Equal(t, "company 123-45 not found", NotFoundError("company", "123-45").Error())
}
