package api

import "context"

// Table is a physical restaurant table
type Table struct {
	ID     int64  `json:"id"`
	Number string `json:"numero"`
}

// TablesClient accesses the table endpoints
type TablesClient struct {
	api *Client
}

// NewTablesClient creates a new tables client
func NewTablesClient(api *Client) *TablesClient {
	return &TablesClient{api: api}
}

// List fetches all tables
func (c *TablesClient) List(ctx context.Context) ([]Table, error) {
	var resp Response[Collection[Table]]
	if err := c.api.Get(ctx, "/mesas", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.Data.Items, nil
}
