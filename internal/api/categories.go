package api

import (
	"context"
	"fmt"
)

// Category groups menu items
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
}

// CategoryRequest is the body for creating or replacing a category
type CategoryRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
}

// CategoriesClient accesses the category endpoints
type CategoriesClient struct {
	api *Client
}

// NewCategoriesClient creates a new categories client
func NewCategoriesClient(api *Client) *CategoriesClient {
	return &CategoriesClient{api: api}
}

// List fetches all categories
func (c *CategoriesClient) List(ctx context.Context) ([]Category, error) {
	var resp Response[Collection[Category]]
	if err := c.api.Get(ctx, "/categorias", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.Data.Items, nil
}

// Get fetches a single category
func (c *CategoriesClient) Get(ctx context.Context, id int64) (*Category, error) {
	var resp Response[Category]
	if err := c.api.Get(ctx, fmt.Sprintf("/categorias/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Create adds a category and returns its ID
func (c *CategoriesClient) Create(ctx context.Context, req CategoryRequest) (int64, error) {
	var resp Response[struct {
		ID int64 `json:"id"`
	}]
	if err := c.api.Post(ctx, "/categorias", req, &resp); err != nil {
		return 0, err
	}
	if err := resp.Err(); err != nil {
		return 0, err
	}
	return resp.Data.ID, nil
}

// Update replaces a category's fields
func (c *CategoriesClient) Update(ctx context.Context, id int64, req CategoryRequest) error {
	var resp Response[struct{}]
	if err := c.api.Put(ctx, fmt.Sprintf("/categorias/%d", id), req, &resp); err != nil {
		return err
	}
	return resp.Err()
}

// Delete removes a category
func (c *CategoriesClient) Delete(ctx context.Context, id int64) error {
	var resp Response[struct{}]
	if err := c.api.Delete(ctx, fmt.Sprintf("/categorias/%d", id), &resp); err != nil {
		return err
	}
	return resp.Err()
}
