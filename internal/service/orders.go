package service

import (
	"context"
	"fmt"

	"github.com/restaurapp/restaurapp-cli/internal/api"
	iface "github.com/restaurapp/restaurapp-cli/internal/service/interface"
)

// orderService implements iface.OrderService
type orderService struct {
	orders   *api.OrdersClient
	items    *api.OrderItemsClient
	payments *api.PaymentsClient
}

// NewOrderService creates a new order service
func NewOrderService(orders *api.OrdersClient, items *api.OrderItemsClient, payments *api.PaymentsClient) iface.OrderService {
	return &orderService{
		orders:   orders,
		items:    items,
		payments: payments,
	}
}

// List returns orders matching the given filters
func (s *orderService) List(ctx context.Context, filters api.OrderFilters) ([]api.OrderSummary, error) {
	orders, err := s.orders.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}

// Get returns an order with its items
func (s *orderService) Get(ctx context.Context, id int64) (*api.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %d: %w", id, err)
	}

	return order, nil
}

// Create opens a new order
func (s *orderService) Create(ctx context.Context, req api.CreateOrderRequest) (int64, error) {
	id, err := s.orders.Create(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	return id, nil
}

// SendToKitchen moves an open order into preparation
func (s *orderService) SendToKitchen(ctx context.Context, id int64) error {
	if err := s.orders.SendToKitchen(ctx, id); err != nil {
		return fmt.Errorf("failed to send order %d to kitchen: %w", id, err)
	}

	return nil
}

// MarkReady marks an order as ready to serve
func (s *orderService) MarkReady(ctx context.Context, id int64) error {
	if err := s.orders.MarkReady(ctx, id); err != nil {
		return fmt.Errorf("failed to mark order %d ready: %w", id, err)
	}

	return nil
}

// MarkDelivered marks an order as delivered
func (s *orderService) MarkDelivered(ctx context.Context, id int64) error {
	if err := s.orders.MarkDelivered(ctx, id); err != nil {
		return fmt.Errorf("failed to mark order %d delivered: %w", id, err)
	}

	return nil
}

// Cancel cancels an order
func (s *orderService) Cancel(ctx context.Context, id int64) error {
	if err := s.orders.Cancel(ctx, id); err != nil {
		return fmt.Errorf("failed to cancel order %d: %w", id, err)
	}

	return nil
}

// AddItem appends a line to an order
func (s *orderService) AddItem(ctx context.Context, orderID int64, item api.NewOrderItem) (int64, error) {
	id, err := s.items.Add(ctx, orderID, item)
	if err != nil {
		return 0, fmt.Errorf("failed to add item to order %d: %w", orderID, err)
	}

	return id, nil
}

// RemoveItem deletes a line from an order
func (s *orderService) RemoveItem(ctx context.Context, orderID, itemID int64) error {
	if err := s.items.Remove(ctx, orderID, itemID); err != nil {
		return fmt.Errorf("failed to remove item %d from order %d: %w", itemID, orderID, err)
	}

	return nil
}

// Payments returns an order's payments and outstanding balance
func (s *orderService) Payments(ctx context.Context, orderID int64) (*api.PaymentsSummary, error) {
	summary, err := s.payments.List(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments for order %d: %w", orderID, err)
	}

	return summary, nil
}

// Pay applies a payment to an order
func (s *orderService) Pay(ctx context.Context, orderID int64, amount float64, method string) (*api.PaymentReceipt, error) {
	receipt, err := s.payments.Create(ctx, orderID, amount, method)
	if err != nil {
		return nil, fmt.Errorf("failed to pay order %d: %w", orderID, err)
	}

	return receipt, nil
}

// VoidPayment cancels a previously applied payment
func (s *orderService) VoidPayment(ctx context.Context, orderID, paymentID int64) error {
	if err := s.payments.Void(ctx, orderID, paymentID); err != nil {
		return fmt.Errorf("failed to void payment %d on order %d: %w", paymentID, orderID, err)
	}

	return nil
}
