package iface

import (
	"context"

	"github.com/restaurapp/restaurapp-cli/internal/api"
)

// OrderService defines the interface for order operations, including
// the order's items and payments
type OrderService interface {
	// List fetches orders matching the given filters
	List(ctx context.Context, filters api.OrderFilters) ([]api.OrderSummary, error)

	// Get fetches a single order with its items
	Get(ctx context.Context, id int64) (*api.Order, error)

	// Create opens a new order and returns its ID
	Create(ctx context.Context, req api.CreateOrderRequest) (int64, error)

	// SendToKitchen moves an open order into preparation
	SendToKitchen(ctx context.Context, id int64) error

	// MarkReady marks an order as ready to serve
	MarkReady(ctx context.Context, id int64) error

	// MarkDelivered marks an order as delivered
	MarkDelivered(ctx context.Context, id int64) error

	// Cancel cancels an order
	Cancel(ctx context.Context, id int64) error

	// AddItem appends a line to an order
	AddItem(ctx context.Context, orderID int64, item api.NewOrderItem) (int64, error)

	// RemoveItem deletes a line from an order
	RemoveItem(ctx context.Context, orderID, itemID int64) error

	// Payments fetches an order's payments and outstanding balance
	Payments(ctx context.Context, orderID int64) (*api.PaymentsSummary, error)

	// Pay applies a payment to an order
	Pay(ctx context.Context, orderID int64, amount float64, method string) (*api.PaymentReceipt, error)

	// VoidPayment cancels a previously applied payment
	VoidPayment(ctx context.Context, orderID, paymentID int64) error
}
