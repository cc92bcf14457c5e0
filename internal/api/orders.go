package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// OrderStatus is the lifecycle state of an order. The backend keeps its
// Spanish state names on the wire.
type OrderStatus string

const (
	OrderOpen          OrderStatus = "ABIERTO"
	OrderInPreparation OrderStatus = "EN_PREPARACION"
	OrderReady         OrderStatus = "LISTO"
	OrderDelivered     OrderStatus = "ENTREGADO"
	OrderClosed        OrderStatus = "CERRADO"
	OrderCancelled     OrderStatus = "CANCELADO"
)

// ItemPrepStatus is the kitchen preparation state of a single order item
type ItemPrepStatus string

const (
	ItemPending       ItemPrepStatus = "PENDIENTE"
	ItemInPreparation ItemPrepStatus = "EN_PREPARACION"
	ItemReady         ItemPrepStatus = "LISTO"
)

// OrderSummary is the shape returned by the order list endpoint
type OrderSummary struct {
	ID          int64       `json:"id"`
	TableID     int64       `json:"mesaId"`
	TableNumber string      `json:"mesaNumero"`
	WaiterID    string      `json:"meseroId"`
	Status      OrderStatus `json:"estado"`
	Total       float64     `json:"total"`
	CreatedAt   string      `json:"createdAt"`
}

// Order is the full order detail including its items
type Order struct {
	ID          int64       `json:"id"`
	TableID     int64       `json:"mesaId"`
	TableNumber string      `json:"mesaNumero"`
	WaiterID    string      `json:"meseroId"`
	Status      OrderStatus `json:"estado"`
	Total       float64     `json:"total"`
	Notes       string      `json:"notas,omitempty"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
	Items       []OrderItem `json:"items"`
}

// OrderItem is a single line of an order
type OrderItem struct {
	ID           int64          `json:"id"`
	MenuItemID   int64          `json:"itemMenuId"`
	MenuItemName string         `json:"itemMenuNombre"`
	Quantity     int            `json:"cantidad"`
	UnitPrice    float64        `json:"precioUnitario"`
	Subtotal     float64        `json:"subtotal"`
	PrepStatus   ItemPrepStatus `json:"estadoPreparacion"`
	Notes        string         `json:"notas,omitempty"`
}

// NewOrderItem is one line of an order creation request
type NewOrderItem struct {
	MenuItemID int64  `json:"item_menu_id"`
	Quantity   int    `json:"cantidad"`
	Notes      string `json:"notas,omitempty"`
}

// CreateOrderRequest is the body for creating an order
type CreateOrderRequest struct {
	TableID  int64          `json:"mesa_id"`
	WaiterID string         `json:"mesero_id"`
	Notes    string         `json:"notas,omitempty"`
	Items    []NewOrderItem `json:"items"`
}

// OrderPatch updates mutable order fields; nil fields are left untouched
type OrderPatch struct {
	WaiterID *string `json:"mesero_id,omitempty"`
	Notes    *string `json:"notas,omitempty"`
}

// OrderFilters narrows the order list
type OrderFilters struct {
	TableID int64
	Status  OrderStatus
	From    string
	To      string
	Page    int
	Size    int
	Sort    string
}

func (f OrderFilters) values() url.Values {
	q := url.Values{}
	if f.TableID > 0 {
		q.Set("mesa_id", strconv.FormatInt(f.TableID, 10))
	}
	if f.Status != "" {
		q.Set("estado", string(f.Status))
	}
	if f.From != "" {
		q.Set("desde", f.From)
	}
	if f.To != "" {
		q.Set("hasta", f.To)
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

// OrdersClient accesses the order endpoints
type OrdersClient struct {
	api *Client
}

// NewOrdersClient creates a new orders client
func NewOrdersClient(api *Client) *OrdersClient {
	return &OrdersClient{api: api}
}

// List fetches orders matching the given filters
func (c *OrdersClient) List(ctx context.Context, filters OrderFilters) ([]OrderSummary, error) {
	var resp Response[[]OrderSummary]
	if err := c.api.Get(ctx, "/pedidos", filters.values(), &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Get fetches a single order with its items
func (c *OrdersClient) Get(ctx context.Context, id int64) (*Order, error) {
	var resp Response[Order]
	if err := c.api.Get(ctx, fmt.Sprintf("/pedidos/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Create opens a new order and returns its ID
func (c *OrdersClient) Create(ctx context.Context, req CreateOrderRequest) (int64, error) {
	var resp Response[struct {
		ID int64 `json:"id"`
	}]
	if err := c.api.Post(ctx, "/pedidos", req, &resp); err != nil {
		return 0, err
	}
	if err := resp.Err(); err != nil {
		return 0, err
	}
	return resp.Data.ID, nil
}

// Update patches mutable order fields
func (c *OrdersClient) Update(ctx context.Context, id int64, patch OrderPatch) error {
	var resp Response[struct{}]
	if err := c.api.Patch(ctx, fmt.Sprintf("/pedidos/%d", id), patch, &resp); err != nil {
		return err
	}
	return resp.Err()
}

// SendToKitchen moves an open order into preparation
func (c *OrdersClient) SendToKitchen(ctx context.Context, id int64) error {
	return c.transition(ctx, id, "enviar-a-cocina")
}

// MarkReady marks an order as ready to serve
func (c *OrdersClient) MarkReady(ctx context.Context, id int64) error {
	return c.transition(ctx, id, "marcar-listo")
}

// MarkDelivered marks an order as delivered to the table
func (c *OrdersClient) MarkDelivered(ctx context.Context, id int64) error {
	return c.transition(ctx, id, "marcar-entregado")
}

// Cancel cancels an order
func (c *OrdersClient) Cancel(ctx context.Context, id int64) error {
	return c.transition(ctx, id, "cancelar")
}

func (c *OrdersClient) transition(ctx context.Context, id int64, action string) error {
	var resp Response[struct {
		Message string `json:"message"`
	}]
	if err := c.api.Post(ctx, fmt.Sprintf("/pedidos/%d/%s", id, action), struct{}{}, &resp); err != nil {
		return err
	}
	return resp.Err()
}
