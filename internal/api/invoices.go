package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Invoice is an issued invoice for a closed order
type Invoice struct {
	ID          int64   `json:"id"`
	Number      string  `json:"numero"`
	OrderID     int64   `json:"pedidoId"`
	TableID     int64   `json:"mesaId"`
	TableNumber string  `json:"mesaNumero"`
	WaiterID    string  `json:"meseroId"`
	WaiterName  string  `json:"meseroNombre,omitempty"`
	Total       float64 `json:"total"`
	IssuedAt    string  `json:"fechaEmision"`
}

// InvoiceFilters narrows the invoice list
type InvoiceFilters struct {
	TableID  int64
	WaiterID string
	From     string
	To       string
	Page     int
	Size     int
	Sort     string
}

func (f InvoiceFilters) values() url.Values {
	q := url.Values{}
	if f.TableID > 0 {
		q.Set("mesa_id", strconv.FormatInt(f.TableID, 10))
	}
	if f.WaiterID != "" {
		q.Set("mesero_id", f.WaiterID)
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

// InvoicesClient accesses the invoice endpoints
type InvoicesClient struct {
	api *Client
}

// NewInvoicesClient creates a new invoices client
func NewInvoicesClient(api *Client) *InvoicesClient {
	return &InvoicesClient{api: api}
}

// Issue emits an invoice for an order and returns the invoice ID
func (c *InvoicesClient) Issue(ctx context.Context, orderID int64) (int64, error) {
	var resp Response[struct {
		ID int64 `json:"id"`
	}]
	if err := c.api.Post(ctx, fmt.Sprintf("/pedidos/%d/factura", orderID), struct{}{}, &resp); err != nil {
		return 0, err
	}
	if err := resp.Err(); err != nil {
		return 0, err
	}
	return resp.Data.ID, nil
}

// List fetches invoices matching the given filters
func (c *InvoicesClient) List(ctx context.Context, filters InvoiceFilters) ([]Invoice, error) {
	var resp Response[[]Invoice]
	if err := c.api.Get(ctx, "/facturas", filters.values(), &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Get fetches a single invoice
func (c *InvoicesClient) Get(ctx context.Context, id int64) (*Invoice, error) {
	var resp Response[Invoice]
	if err := c.api.Get(ctx, fmt.Sprintf("/facturas/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
