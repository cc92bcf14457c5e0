package api

import "context"

// HealthStatus is the backend health probe response
type HealthStatus struct {
	Status string `json:"status"`
}

// Health probes the backend health endpoint
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.Get(ctx, "/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
