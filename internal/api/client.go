// Package api provides the HTTP client for the RestaurApp backend.
// Every resource client goes through Client, which attaches the bearer
// credential and transparently recovers from expired access tokens.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TokenSource supplies credentials for protected requests and owns the
// recovery policy when they go stale. Resource clients never touch the
// session store or token codec directly.
type TokenSource interface {
	GetAccessToken() string
	HasRefreshToken() bool
	RefreshAccessToken(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
}

// Client is an HTTP client for the RestaurApp API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a new API client
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
}

// Request performs an HTTP request to the API.
//
// A 401 response triggers at most one refresh-and-replay: the refresh
// joins any in-flight attempt, the original request is re-sent once
// with the new token, and a second 401 is surfaced as-is. A 401 with no
// refresh token (or a failed refresh) forces a logout.
func (c *Client) Request(ctx context.Context, method, path string, query url.Values, body interface{}, result interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	status, respBody, err := c.send(ctx, method, reqURL, payload, c.tokens.GetAccessToken())
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		if !c.tokens.HasRefreshToken() {
			_ = c.tokens.Logout(ctx)
			return apiError(status, respBody)
		}

		accessToken, refreshErr := c.tokens.RefreshAccessToken(ctx)
		if refreshErr != nil {
			_ = c.tokens.Logout(ctx)
			return refreshErr
		}

		log.Debug().Str("path", path).Msg("replaying request with refreshed token")
		status, respBody, err = c.send(ctx, method, reqURL, payload, accessToken)
		if err != nil {
			return err
		}
		// A second 401 falls through and surfaces below.
	}

	if status >= 400 {
		return apiError(status, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// send dispatches a single HTTP request and reads the full response.
func (c *Client) send(ctx context.Context, method, reqURL string, payload []byte, accessToken string) (int, []byte, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, query url.Values, result interface{}) error {
	return c.Request(ctx, http.MethodGet, path, query, nil, result)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.Request(ctx, http.MethodPost, path, nil, body, result)
}

// Put performs a PUT request
func (c *Client) Put(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.Request(ctx, http.MethodPut, path, nil, body, result)
}

// Patch performs a PATCH request
func (c *Client) Patch(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.Request(ctx, http.MethodPatch, path, nil, body, result)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string, result interface{}) error {
	return c.Request(ctx, http.MethodDelete, path, nil, nil, result)
}

// Response is the standard envelope the backend wraps every payload in.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// Err reports a rejection carried inside a 2xx envelope.
func (r *Response[T]) Err() error {
	if r.Success {
		return nil
	}
	if r.Message != "" {
		return errors.New(r.Message)
	}
	return errors.New("request rejected by the API")
}

// Collection is the envelope data shape used by list endpoints.
type Collection[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Message string `json:"message"`
}

// APIError represents an error returned by the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsUnauthorized checks if the error is an unauthorized error
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsNotFound checks if the error is a not found error
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// apiError builds an APIError from a non-2xx response body.
func apiError(status int, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{
			StatusCode: status,
			Message:    errResp.Message,
		}
	}
	return &APIError{
		StatusCode: status,
		Message:    fmt.Sprintf("request failed with status %d", status),
	}
}
