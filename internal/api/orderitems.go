package api

import (
	"context"
	"fmt"
)

// OrderItemsClient accesses the nested order item endpoints
type OrderItemsClient struct {
	api *Client
}

// NewOrderItemsClient creates a new order items client
func NewOrderItemsClient(api *Client) *OrderItemsClient {
	return &OrderItemsClient{api: api}
}

// OrderItemPatch updates a line's quantity or notes
type OrderItemPatch struct {
	Quantity *int    `json:"cantidad,omitempty"`
	Notes    *string `json:"notas,omitempty"`
}

type itemPrepStatusRequest struct {
	PrepStatus ItemPrepStatus `json:"estado_preparacion"`
}

func (c *OrderItemsClient) path(orderID int64, suffix string) string {
	return fmt.Sprintf("/pedidos/%d/items%s", orderID, suffix)
}

// List fetches all lines of an order
func (c *OrderItemsClient) List(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var resp Response[[]OrderItem]
	if err := c.api.Get(ctx, c.path(orderID, ""), nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Add appends a line to an order and returns the new line's ID
func (c *OrderItemsClient) Add(ctx context.Context, orderID int64, item NewOrderItem) (int64, error) {
	var resp Response[struct {
		ID int64 `json:"id"`
	}]
	if err := c.api.Post(ctx, c.path(orderID, ""), item, &resp); err != nil {
		return 0, err
	}
	if err := resp.Err(); err != nil {
		return 0, err
	}
	return resp.Data.ID, nil
}

// Update patches a line's quantity or notes
func (c *OrderItemsClient) Update(ctx context.Context, orderID, itemID int64, patch OrderItemPatch) error {
	var resp Response[struct{}]
	if err := c.api.Patch(ctx, c.path(orderID, fmt.Sprintf("/%d", itemID)), patch, &resp); err != nil {
		return err
	}
	return resp.Err()
}

// Remove deletes a line from an order
func (c *OrderItemsClient) Remove(ctx context.Context, orderID, itemID int64) error {
	var resp Response[struct{}]
	if err := c.api.Delete(ctx, c.path(orderID, fmt.Sprintf("/%d", itemID)), &resp); err != nil {
		return err
	}
	return resp.Err()
}

// SetPrepStatus updates the kitchen preparation state of a line
func (c *OrderItemsClient) SetPrepStatus(ctx context.Context, orderID, itemID int64, status ItemPrepStatus) error {
	var resp Response[struct{}]
	path := c.path(orderID, fmt.Sprintf("/%d/estado", itemID))
	if err := c.api.Patch(ctx, path, itemPrepStatusRequest{PrepStatus: status}, &resp); err != nil {
		return err
	}
	return resp.Err()
}
