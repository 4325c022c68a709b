// Package sdk is a thin typed Go client for the quotient HTTP API.
package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to a quotient API server.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the bearer token sent on every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search ranks catalog services against query, returning at most k results.
func (c *Client) Search(ctx context.Context, query string, k int) (SearchResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	if k > 0 {
		q.Set("k", strconv.Itoa(k))
	}
	var resp SearchResponse
	err := c.get(ctx, "/api/v1/services/search?"+q.Encode(), &resp)
	return resp, err
}

// Services lists all active catalog services with estimated prices.
func (c *Client) Services(ctx context.Context) (ServicesResponse, error) {
	var resp ServicesResponse
	err := c.get(ctx, "/api/v1/services", &resp)
	return resp, err
}

// Estimate returns a single service with its estimated labor price.
func (c *Client) Estimate(ctx context.Context, serviceID string) (Service, error) {
	var resp Service
	err := c.get(ctx, "/api/v1/services/"+url.PathEscape(serviceID)+"/estimate", &resp)
	return resp, err
}

// Packages lists all synthesized service bundles.
func (c *Client) Packages(ctx context.Context) (PackagesResponse, error) {
	var resp PackagesResponse
	err := c.get(ctx, "/api/v1/packages", &resp)
	return resp, err
}

// Health reports server health.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.get(ctx, "/health", &resp)
	return resp, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Code == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       "unknown",
			Message:    strings.TrimSpace(string(body)),
		}
	}
	apiErr.StatusCode = resp.StatusCode
	return &apiErr
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("quotient api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}
