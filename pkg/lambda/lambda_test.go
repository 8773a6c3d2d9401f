package lambda

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicing-api/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFromAPIGateway(t *testing.T) {
	tests := []struct {
		name      string
		event     events.APIGatewayProxyRequest
		wantBody  string
		wantQuery string
		wantErr   bool
	}{
		{
			name: "plain body",
			event: events.APIGatewayProxyRequest{
				HTTPMethod: http.MethodPost,
				Path:       "/api/invoices",
				Body:       `{"number":"1"}`,
			},
			wantBody: `{"number":"1"}`,
		},
		{
			name: "base64 body",
			event: events.APIGatewayProxyRequest{
				HTTPMethod:      http.MethodPost,
				Path:            "/api/invoices",
				Body:            base64.StdEncoding.EncodeToString([]byte(`{"number":"2"}`)),
				IsBase64Encoded: true,
			},
			wantBody: `{"number":"2"}`,
		},
		{
			name: "broken base64",
			event: events.APIGatewayProxyRequest{
				Body:            "%%%",
				IsBase64Encoded: true,
			},
			wantErr: true,
		},
		{
			name: "multi value query wins",
			event: events.APIGatewayProxyRequest{
				HTTPMethod:                      http.MethodGet,
				Path:                            "/api/invoices",
				QueryStringParameters:           map[string]string{"taxId": "last", "buyerTaxId": "B"},
				MultiValueQueryStringParameters: map[string][]string{"taxId": {"first", "last"}},
			},
			wantQuery: "buyerTaxId=B&taxId=first&taxId=last",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := FromAPIGateway(tt.event)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(req.Body))
			assert.Equal(t, tt.wantQuery, req.QueryParams.Encode())
		})
	}
}

func TestToAPIGateway(t *testing.T) {
	text := (&Response{
		StatusCode: http.StatusOK,
		Headers:    http.Header{"Content-Type": {"application/json; charset=utf-8"}},
		Body:       []byte(`{"ok":true}`),
	}).ToAPIGateway()
	assert.False(t, text.IsBase64Encoded)
	assert.Equal(t, `{"ok":true}`, text.Body)

	binary := (&Response{
		StatusCode: http.StatusOK,
		Headers:    http.Header{"Content-Type": {"application/pdf"}},
		Body:       []byte("%PDF-1.3"),
	}).ToAPIGateway()
	assert.True(t, binary.IsBase64Encoded)
	decoded, err := base64.StdEncoding.DecodeString(binary.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(decoded))
}

func TestServe(t *testing.T) {
	router := gin.New()
	router.GET("/api/tax/:taxId", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"taxId":     c.Param("taxId"),
			"requestId": c.GetHeader("X-Request-ID"),
			"filter":    c.Query("year"),
		})
	})

	req, err := FromAPIGateway(events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/api/tax/ABC123",
		QueryStringParameters: map[string]string{"year": "2021"},
		RequestContext:        events.APIGatewayProxyRequestContext{RequestID: "req-1"},
	})
	require.NoError(t, err)

	resp, err := Serve(context.Background(), router, req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"taxId":"ABC123","requestId":"req-1","filter":"2021"}`, string(resp.Body))
	assert.Contains(t, resp.Headers.Get("Content-Type"), "application/json")
}

func TestMultiValueHeaders(t *testing.T) {
	router := gin.New()
	router.GET("/api/auth/me", func(c *gin.Context) {
		c.Writer.Header().Add("Set-Cookie", "session=abc; Path=/")
		c.Writer.Header().Add("Set-Cookie", "theme=dark; Path=/")
		c.JSON(http.StatusOK, gin.H{"accept": c.Request.Header.Values("Accept"), "agent": c.GetHeader("User-Agent")})
	})

	req, err := FromAPIGateway(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/api/auth/me",
		Headers:    map[string]string{"accept": "text/html", "user-agent": "curl/8.0"},
		MultiValueHeaders: map[string][]string{
			"accept": {"application/json", "text/plain"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"application/json", "text/plain"}, req.Headers.Values("Accept"))
	assert.Equal(t, "curl/8.0", req.Headers.Get("User-Agent"))

	resp, err := Serve(context.Background(), router, req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"accept":["application/json","text/plain"],"agent":"curl/8.0"}`, string(resp.Body))

	event := resp.ToAPIGateway()
	assert.Equal(t, []string{"session=abc; Path=/", "theme=dark; Path=/"}, event.MultiValueHeaders["Set-Cookie"])
	assert.Equal(t, "session=abc; Path=/", event.Headers["Set-Cookie"])
	assert.Contains(t, event.Headers["Content-Type"], "application/json")
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Environment: "test",
		Log:         config.LogConfig{Level: "error", Format: "json"},
		Database: config.DatabaseConfig{
			Driver:           "sqlite3",
			ConnectionString: filepath.Join(t.TempDir(), "lambda.db"),
			MaxOpenConns:     1,
			MaxIdleConns:     1,
			ConnMaxLifetime:  time.Hour,
			AutoMigrate:      true,
		},
		Storage: config.StorageConfig{Type: "memory"},
		JWT:     config.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		CORS:    config.CORSConfig{AllowedOrigins: []string{config.DefaultAllowedOrigin}},
		Errors:  config.ErrorConfig{TaxNotFoundStatus: http.StatusNotFound},
	}
}

func TestAPIGatewayHandler(t *testing.T) {
	cm := NewConnectionManager(testConfig(t))
	t.Cleanup(func() { cm.Cleanup() })
	handle := APIGatewayHandler(cm)

	resp, err := handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/health",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, cm.IsHealthy(context.Background()))
	assert.False(t, cm.LastUsed().IsZero())

	resp, err = handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/api/tax/unknown",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestConnectionManagerRetriesFailedInitialization(t *testing.T) {
	cfg := testConfig(t)
	calls := 0
	cm := &ConnectionManager{loadConfig: func() (*config.Config, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("parameter store unavailable")
		}
		return cfg, nil
	}}
	t.Cleanup(func() { cm.Cleanup() })
	handle := APIGatewayHandler(cm)

	resp, err := handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/health"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.False(t, cm.IsHealthy(context.Background()))

	resp, err = handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/health"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, calls)
}
