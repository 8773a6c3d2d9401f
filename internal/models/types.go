package models

// DateLayout is the wire and storage layout of invoice dates.
const DateLayout = "2006-01-02"

// Role names carried in user records and JWT claims
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidationError represents a validation error with field-specific details
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	return ve.Message
}
