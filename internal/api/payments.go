package api

import (
	"context"
	"fmt"
)

// PaymentStatus is the state of a recorded payment
type PaymentStatus string

const (
	PaymentApplied PaymentStatus = "APLICADO"
	PaymentVoided  PaymentStatus = "ANULADO"
)

// Payment methods accepted by the backend
const (
	PaymentCash     = "EFECTIVO"
	PaymentCard     = "TARJETA"
	PaymentQR       = "QR"
	PaymentTransfer = "TRANSFERENCIA"
)

// Payment is a single payment applied to an order
type Payment struct {
	ID        int64         `json:"id"`
	Amount    float64       `json:"monto"`
	Method    string        `json:"metodo"`
	Status    PaymentStatus `json:"estado"`
	CreatedAt string        `json:"createdAt"`
}

// PaymentsSummary lists an order's payments and the outstanding balance
type PaymentsSummary struct {
	Payments   []Payment `json:"pagos"`
	BalanceDue float64   `json:"saldoPendiente"`
}

// PaymentReceipt is returned when a payment is applied
type PaymentReceipt struct {
	ID     int64   `json:"id"`
	Change float64 `json:"cambio"`
}

type createPaymentRequest struct {
	Amount float64 `json:"monto"`
	Method string  `json:"metodo"`
}

// PaymentsClient accesses the nested payment endpoints
type PaymentsClient struct {
	api *Client
}

// NewPaymentsClient creates a new payments client
func NewPaymentsClient(api *Client) *PaymentsClient {
	return &PaymentsClient{api: api}
}

func (c *PaymentsClient) path(orderID int64, suffix string) string {
	return fmt.Sprintf("/pedidos/%d/pagos%s", orderID, suffix)
}

// List fetches an order's payments and outstanding balance
func (c *PaymentsClient) List(ctx context.Context, orderID int64) (*PaymentsSummary, error) {
	var resp Response[PaymentsSummary]
	if err := c.api.Get(ctx, c.path(orderID, ""), nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Create applies a payment to an order and returns the change due
func (c *PaymentsClient) Create(ctx context.Context, orderID int64, amount float64, method string) (*PaymentReceipt, error) {
	var resp Response[PaymentReceipt]
	body := createPaymentRequest{Amount: amount, Method: method}
	if err := c.api.Post(ctx, c.path(orderID, ""), body, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Void cancels a previously applied payment
func (c *PaymentsClient) Void(ctx context.Context, orderID, paymentID int64) error {
	var resp Response[struct {
		Message string `json:"message"`
	}]
	if err := c.api.Delete(ctx, c.path(orderID, fmt.Sprintf("/%d", paymentID)), &resp); err != nil {
		return err
	}
	return resp.Err()
}
