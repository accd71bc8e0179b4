package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/acecbt/acetoken/internal/pkg/logger"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader is the header name for API key authentication
	APIKeyHeader = "X-API-Key"
)

// StatusError is returned when a request completes with a non-2xx status.
// The decoded error body message, when present, is carried in Message.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// ErrNotJSON is returned when a response does not carry a JSON content type.
// Such responses are hard failures regardless of HTTP status: a captive
// portal or proxy error page must never be interpreted as an answer.
var ErrNotJSON = fmt.Errorf("response is not JSON")

// Client is a JSON HTTP client for communicating with services
type Client struct {
	baseURL     string
	apiKey      string
	bearerToken string
	httpClient  *nethttp.Client
}

// NewClient creates a new HTTP client with the given per-call timeout
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(serviceURL, "/"),
		httpClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

// NewClientWithAPIKey creates a new HTTP client that authenticates with an API key
func NewClientWithAPIKey(serviceURL, apiKey string, timeout time.Duration) *Client {
	c := NewClient(serviceURL, timeout)
	c.apiKey = apiKey
	return c
}

// SetBearerToken sets the bearer token attached to subsequent requests.
// An empty token clears it.
func (c *Client) SetBearerToken(token string) {
	c.bearerToken = token
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodGet, endpoint, nil, result)
}

// PostJSON performs a POST request with a JSON body and decodes the JSON response
func (c *Client) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPost, endpoint, body, result)
}

// PutJSON performs a PUT request with a JSON body and decodes the JSON response
func (c *Client) PutJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPut, endpoint, body, result)
}

// DeleteJSON performs a DELETE request and decodes the JSON response
func (c *Client) DeleteJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodDelete, endpoint, nil, result)
}

// errorEnvelope mirrors the standard error response body
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, result interface{}) error {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return fmt.Errorf("%w: got %q from %s", ErrNotJSON, mediaType, url)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &StatusError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
