package lambda

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Request is an HTTP request decoded from an API Gateway proxy event
type Request struct {
	Method      string
	Path        string
	Headers     http.Header
	QueryParams url.Values
	Body        []byte
	RequestID   string
}

// Response is an HTTP response to encode back into a proxy event
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// FromAPIGateway decodes an API Gateway proxy event
func FromAPIGateway(event events.APIGatewayProxyRequest) (*Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
		body = decoded
	}

	headers := http.Header{}
	for key, values := range event.MultiValueHeaders {
		for _, value := range values {
			headers.Add(key, value)
		}
	}
	for key, value := range event.Headers {
		if len(headers.Values(key)) == 0 {
			headers.Set(key, value)
		}
	}

	query := url.Values{}
	for key, values := range event.MultiValueQueryStringParameters {
		query[key] = append([]string(nil), values...)
	}
	for key, value := range event.QueryStringParameters {
		if _, ok := query[key]; !ok {
			query.Set(key, value)
		}
	}

	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        body,
		RequestID:   event.RequestContext.RequestID,
	}, nil
}

// HTTPRequest converts the request into a net/http request bound to ctx
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	target := r.Path
	if target == "" {
		target = "/"
	}
	if len(r.QueryParams) > 0 {
		target += "?" + r.QueryParams.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, bytes.NewReader(r.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for key, values := range r.Headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if r.RequestID != "" && req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", r.RequestID)
	}
	req.ContentLength = int64(len(r.Body))
	req.RemoteAddr = "127.0.0.1:0"
	if ip := req.Header.Get("X-Forwarded-For"); ip != "" {
		req.RemoteAddr = strings.TrimSpace(strings.Split(ip, ",")[0]) + ":0"
	}
	return req, nil
}

// ToAPIGateway encodes the response. Non-text bodies such as PDFs are base64 encoded.
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	resp := events.APIGatewayProxyResponse{
		StatusCode:        r.StatusCode,
		Headers:           make(map[string]string, len(r.Headers)),
		MultiValueHeaders: make(map[string][]string, len(r.Headers)),
	}
	for key, values := range r.Headers {
		if len(values) == 0 {
			continue
		}
		resp.Headers[key] = values[0]
		resp.MultiValueHeaders[key] = append([]string(nil), values...)
	}
	if isTextual(r.Headers.Get("Content-Type")) {
		resp.Body = string(r.Body)
	} else {
		resp.Body = base64.StdEncoding.EncodeToString(r.Body)
		resp.IsBase64Encoded = true
	}
	return resp
}

func isTextual(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0])
	return strings.HasPrefix(mediaType, "text/") ||
		mediaType == "application/json" ||
		mediaType == "application/javascript" ||
		strings.HasSuffix(mediaType, "+json")
}
