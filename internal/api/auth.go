package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// AuthClient calls the backend auth endpoints. It deliberately bypasses
// Client: login and refresh must never carry a bearer credential, and a
// 401 from these endpoints must not recurse into the refresh flow.
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAuthClient creates a new auth endpoint client
func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Credentials is the login request body
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenGrant is the token payload returned by login and refresh.
// ExpiresIn is the access token lifetime in seconds.
type TokenGrant struct {
	AccessToken  string `json:"accessToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Login exchanges credentials for a token pair
func (c *AuthClient) Login(ctx context.Context, creds Credentials) (*TokenGrant, error) {
	return c.postForGrant(ctx, "/auth/login", creds)
}

// Refresh exchanges a refresh token for a new access token
func (c *AuthClient) Refresh(ctx context.Context, refreshToken string) (*TokenGrant, error) {
	return c.postForGrant(ctx, "/auth/refresh", refreshRequest{RefreshToken: refreshToken})
}

// Logout invalidates the session server-side
func (c *AuthClient) Logout(ctx context.Context) error {
	status, respBody, err := c.post(ctx, "/auth/logout", struct{}{})
	if err != nil {
		return err
	}
	if status >= 400 {
		return apiError(status, respBody)
	}

	var resp Response[struct{}]
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("failed to parse logout response: %w", err)
	}
	return resp.Err()
}

func (c *AuthClient) postForGrant(ctx context.Context, path string, body interface{}) (*TokenGrant, error) {
	status, respBody, err := c.post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, apiError(status, respBody)
	}

	var resp Response[TokenGrant]
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *AuthClient) post(ctx context.Context, path string, body interface{}) (int, []byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

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
