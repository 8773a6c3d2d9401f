package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the key used to store request ID in context
const RequestIDKey = "request_id"

// responseWriter wraps gin.ResponseWriter to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.body.Len() < 1024 {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger logs one entry per request with its request ID
func StructuredLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// request bodies are only kept in debug mode and never for credentials
		var requestBody []byte
		debug := gin.Mode() == gin.DebugMode
		if debug && c.Request.Body != nil && c.Request.ContentLength > 0 &&
			c.Request.ContentLength < 1024*10 && !strings.HasPrefix(path, "/api/auth") {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		bodyWriter := &responseWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = bodyWriter

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := logrus.Fields{
			"request_id":    c.GetString(RequestIDKey),
			"method":        c.Request.Method,
			"path":          path,
			"status_code":   status,
			"latency_ms":    float64(latency.Nanoseconds()) / 1000000,
			"client_ip":     c.ClientIP(),
			"user_agent":    c.Request.UserAgent(),
			"response_size": c.Writer.Size(),
		}
		if raw != "" {
			fields["query"] = raw
		}
		if userID := c.GetString("user_id"); userID != "" {
			fields["user_id"] = userID
		}
		if body, ok := redactBody(requestBody); ok {
			fields["request_body"] = body
		}
		if debug && status >= 400 && strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "application/json") {
			fields["response_body"] = bodyWriter.body.String()
		}

		entry := logger.WithFields(fields)
		switch {
		case status >= 500:
			entry.Error("Server error")
		case status >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request completed")
		}
	}
}

// redactedValue replaces credential values in logged bodies
const redactedValue = "[REDACTED]"

var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"refresh_token": {},
	"refreshtoken":  {},
	"secret":        {},
	"authorization": {},
}

// redactBody returns a JSON request body with credential fields masked.
// Bodies that are not JSON are not logged at all.
func redactBody(body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false
	}
	redacted, err := json.Marshal(redactValue(payload))
	if err != nil {
		return "", false
	}
	return string(redacted), true
}

func redactValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		for key, inner := range value {
			if _, ok := sensitiveKeys[strings.ToLower(key)]; ok {
				value[key] = redactedValue
				continue
			}
			value[key] = redactValue(inner)
		}
		return value
	case []any:
		for i, inner := range value {
			value[i] = redactValue(inner)
		}
		return value
	default:
		return v
	}
}

// AuditLogger logs write operations on invoices, companies and users
func AuditLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"audit":          true,
			"request_id":     c.GetString(RequestIDKey),
			"user_id":        c.GetString("user_id"),
			"username":       c.GetString("username"),
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"status_code":    c.Writer.Status(),
			"operation_time": time.Since(start).Milliseconds(),
		}

		switch c.Request.Method {
		case http.MethodPost:
			fields["operation"] = "CREATE"
		case http.MethodPut, http.MethodPatch:
			fields["operation"] = "UPDATE"
		case http.MethodDelete:
			fields["operation"] = "DELETE"
		}

		resource, id := resourceFromPath(c.Request.URL.Path)
		if resource != "" {
			fields["resource_type"] = resource
		}
		if id != "" {
			fields["resource_id"] = id
		}

		logger.WithFields(fields).Info("Audit log")
	}
}

var auditResources = map[string]string{
	"invoices":  "invoice",
	"companies": "company",
	"users":     "user",
}

// resourceFromPath maps "/api/invoices/<id>" to ("invoice", "<id>")
func resourceFromPath(path string) (resource, id string) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		resource, ok := auditResources[part]
		if !ok {
			continue
		}
		if i+1 < len(parts) {
			if _, err := uuid.Parse(parts[i+1]); err == nil {
				id = parts[i+1]
			}
		}
		return resource, id
	}
	return "", ""
}
