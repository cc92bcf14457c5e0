package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// MenuItem is a sellable dish or drink
type MenuItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"nombre"`
	Description  string  `json:"descripcion,omitempty"`
	Price        float64 `json:"precio"`
	CategoryID   int64   `json:"categoriaId"`
	CategoryName string  `json:"categoriaNombre"`
	Active       bool    `json:"activo"`
}

// CreateMenuItemRequest is the body for creating a menu item
type CreateMenuItemRequest struct {
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion,omitempty"`
	Price       float64 `json:"precio"`
	CategoryID  int64   `json:"categoria_id"`
	Active      bool    `json:"activo"`
}

// MenuItemPatch updates menu item fields; nil fields are left untouched
type MenuItemPatch struct {
	Name        *string  `json:"nombre,omitempty"`
	Description *string  `json:"descripcion,omitempty"`
	Price       *float64 `json:"precio,omitempty"`
	CategoryID  *int64   `json:"categoria_id,omitempty"`
	Active      *bool    `json:"activo,omitempty"`
}

// MenuFilters narrows the menu list
type MenuFilters struct {
	CategoryID int64
	Active     *bool
	Query      string
	Page       int
	Size       int
	Sort       string
}

func (f MenuFilters) values() url.Values {
	q := url.Values{}
	if f.CategoryID > 0 {
		q.Set("categoria_id", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.Active != nil {
		q.Set("activo", strconv.FormatBool(*f.Active))
	}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Size > 0 {
		q.Set("size", strconv.Itoa(f.Size))
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}
	return q
}

// MenuClient accesses the menu endpoints
type MenuClient struct {
	api *Client
}

// NewMenuClient creates a new menu client
func NewMenuClient(api *Client) *MenuClient {
	return &MenuClient{api: api}
}

// List fetches menu items matching the given filters
func (c *MenuClient) List(ctx context.Context, filters MenuFilters) ([]MenuItem, error) {
	var resp Response[[]MenuItem]
	if err := c.api.Get(ctx, "/menu", filters.values(), &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Get fetches a single menu item
func (c *MenuClient) Get(ctx context.Context, id int64) (*MenuItem, error) {
	var resp Response[MenuItem]
	if err := c.api.Get(ctx, fmt.Sprintf("/menu/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Create adds a menu item and returns its ID
func (c *MenuClient) Create(ctx context.Context, req CreateMenuItemRequest) (int64, error) {
	var resp Response[struct {
		ID int64 `json:"id"`
	}]
	if err := c.api.Post(ctx, "/menu", req, &resp); err != nil {
		return 0, err
	}
	if err := resp.Err(); err != nil {
		return 0, err
	}
	return resp.Data.ID, nil
}

// Update patches menu item fields
func (c *MenuClient) Update(ctx context.Context, id int64, patch MenuItemPatch) error {
	var resp Response[struct{}]
	if err := c.api.Patch(ctx, fmt.Sprintf("/menu/%d", id), patch, &resp); err != nil {
		return err
	}
	return resp.Err()
}

// Delete removes a menu item
func (c *MenuClient) Delete(ctx context.Context, id int64) error {
	var resp Response[struct{}]
	if err := c.api.Delete(ctx, fmt.Sprintf("/menu/%d", id), &resp); err != nil {
		return err
	}
	return resp.Err()
}
