package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"invoicing-api/internal/middleware"
	"invoicing-api/internal/repositories"
	"invoicing-api/internal/services"
)

// ErrorRule maps errors matching Target (errors.Is) to an HTTP status and error code
type ErrorRule struct {
	Target error
	Status int
	Code   string
}

// DefaultErrorRules returns the rules used when nothing is configured.
// Order matters: the first matching rule wins.
func DefaultErrorRules() []ErrorRule {
	return []ErrorRule{
		{Target: services.ErrCompanyNotFound, Status: http.StatusNotFound, Code: "not_found"},
		{Target: repositories.ErrNotFound, Status: http.StatusNotFound, Code: "not_found"},
		{Target: repositories.ErrDuplicateEntry, Status: http.StatusConflict, Code: "conflict"},
		{Target: repositories.ErrConstraint, Status: http.StatusConflict, Code: "conflict"},
		{Target: services.ErrInvalidInput, Status: http.StatusBadRequest, Code: "validation_error"},
		{Target: repositories.ErrValidation, Status: http.StatusBadRequest, Code: "validation_error"},
		{Target: services.ErrInvalidCredentials, Status: http.StatusUnauthorized, Code: "unauthorized"},
		{Target: middleware.ErrInvalidToken, Status: http.StatusUnauthorized, Code: "unauthorized"},
		{Target: services.ErrForbidden, Status: http.StatusForbidden, Code: "forbidden"},
	}
}

// ErrorMapper translates service errors to HTTP responses
type ErrorMapper struct {
	rules  []ErrorRule
	logger *logrus.Logger
}

// NewErrorMapper creates a mapper. Without rules it uses DefaultErrorRules.
func NewErrorMapper(logger *logrus.Logger, rules ...ErrorRule) *ErrorMapper {
	if len(rules) == 0 {
		rules = DefaultErrorRules()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ErrorMapper{rules: rules, logger: logger}
}

// WithStatus overrides the status of the rule targeting target
func (m *ErrorMapper) WithStatus(target error, status int) *ErrorMapper {
	for i := range m.rules {
		if m.rules[i].Target == target {
			m.rules[i].Status = status
			return m
		}
	}
	m.rules = append([]ErrorRule{{Target: target, Status: status, Code: codeFor(status)}}, m.rules...)
	return m
}

// Resolve returns the status and code for err. Unmatched errors are internal errors.
func (m *ErrorMapper) Resolve(err error) (int, string) {
	for _, rule := range m.rules {
		if errors.Is(err, rule.Target) {
			return rule.Status, rule.Code
		}
	}
	return http.StatusInternalServerError, "internal_error"
}

// Respond writes the error response for err and aborts the request
func (m *ErrorMapper) Respond(c *gin.Context, err error) {
	status, code := m.Resolve(err)

	fields := logrus.Fields{
		"request_id":  c.GetString(middleware.RequestIDKey),
		"method":      c.Request.Method,
		"path":        c.Request.URL.Path,
		"status_code": status,
		"error":       err.Error(),
	}

	message := err.Error()
	if status >= http.StatusInternalServerError {
		m.logger.WithFields(fields).Error("Request failed")
		message = "An internal error occurred"
	} else {
		m.logger.WithFields(fields).Debug("Request rejected")
	}

	body := middleware.NewErrorResponse(c, code, message)
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		body.Details = verr.Fields
	}
	c.AbortWithStatusJSON(status, body)
}

// bindError reports a request body that could not be decoded
func (m *ErrorMapper) bindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest,
		middleware.NewErrorResponse(c, "validation_error", "Invalid request body: "+err.Error()))
}

func codeFor(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusConflict:
		return "conflict"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	default:
		return "error"
	}
}
