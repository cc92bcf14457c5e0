package cmd

import (
	"context"

	"github.com/restaurapp/restaurapp-cli/internal/api"
	"github.com/restaurapp/restaurapp-cli/internal/session"
)

// MockAuthService is a mock implementation of iface.AuthService
type MockAuthService struct {
	LoginFunc      func(ctx context.Context, email, password string) error
	LogoutFunc     func(ctx context.Context) error
	IsLoggedInFunc func() bool
	SessionFunc    func() *session.Session
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

func (m *MockAuthService) IsLoggedIn() bool {
	if m.IsLoggedInFunc != nil {
		return m.IsLoggedInFunc()
	}
	return true
}

func (m *MockAuthService) Session() *session.Session {
	if m.SessionFunc != nil {
		return m.SessionFunc()
	}
	return &session.Session{
		AccessToken: "test-token",
		Subject:     "tester@restaurapp.com",
		Role:        "mesero",
	}
}

// MockOrderService is a mock implementation of iface.OrderService
type MockOrderService struct {
	ListFunc          func(ctx context.Context, filters api.OrderFilters) ([]api.OrderSummary, error)
	GetFunc           func(ctx context.Context, id int64) (*api.Order, error)
	CreateFunc        func(ctx context.Context, req api.CreateOrderRequest) (int64, error)
	SendToKitchenFunc func(ctx context.Context, id int64) error
	MarkReadyFunc     func(ctx context.Context, id int64) error
	MarkDeliveredFunc func(ctx context.Context, id int64) error
	CancelFunc        func(ctx context.Context, id int64) error
	AddItemFunc       func(ctx context.Context, orderID int64, item api.NewOrderItem) (int64, error)
	RemoveItemFunc    func(ctx context.Context, orderID, itemID int64) error
	PaymentsFunc      func(ctx context.Context, orderID int64) (*api.PaymentsSummary, error)
	PayFunc           func(ctx context.Context, orderID int64, amount float64, method string) (*api.PaymentReceipt, error)
	VoidPaymentFunc   func(ctx context.Context, orderID, paymentID int64) error
}

func (m *MockOrderService) List(ctx context.Context, filters api.OrderFilters) ([]api.OrderSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, nil
}

func (m *MockOrderService) Get(ctx context.Context, id int64) (*api.Order, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderService) Create(ctx context.Context, req api.CreateOrderRequest) (int64, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return 0, nil
}

func (m *MockOrderService) SendToKitchen(ctx context.Context, id int64) error {
	if m.SendToKitchenFunc != nil {
		return m.SendToKitchenFunc(ctx, id)
	}
	return nil
}

func (m *MockOrderService) MarkReady(ctx context.Context, id int64) error {
	if m.MarkReadyFunc != nil {
		return m.MarkReadyFunc(ctx, id)
	}
	return nil
}

func (m *MockOrderService) MarkDelivered(ctx context.Context, id int64) error {
	if m.MarkDeliveredFunc != nil {
		return m.MarkDeliveredFunc(ctx, id)
	}
	return nil
}

func (m *MockOrderService) Cancel(ctx context.Context, id int64) error {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, id)
	}
	return nil
}

func (m *MockOrderService) AddItem(ctx context.Context, orderID int64, item api.NewOrderItem) (int64, error) {
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, orderID, item)
	}
	return 0, nil
}

func (m *MockOrderService) RemoveItem(ctx context.Context, orderID, itemID int64) error {
	if m.RemoveItemFunc != nil {
		return m.RemoveItemFunc(ctx, orderID, itemID)
	}
	return nil
}

func (m *MockOrderService) Payments(ctx context.Context, orderID int64) (*api.PaymentsSummary, error) {
	if m.PaymentsFunc != nil {
		return m.PaymentsFunc(ctx, orderID)
	}
	return &api.PaymentsSummary{}, nil
}

func (m *MockOrderService) Pay(ctx context.Context, orderID int64, amount float64, method string) (*api.PaymentReceipt, error) {
	if m.PayFunc != nil {
		return m.PayFunc(ctx, orderID, amount, method)
	}
	return &api.PaymentReceipt{}, nil
}

func (m *MockOrderService) VoidPayment(ctx context.Context, orderID, paymentID int64) error {
	if m.VoidPaymentFunc != nil {
		return m.VoidPaymentFunc(ctx, orderID, paymentID)
	}
	return nil
}

// MockMenuService is a mock implementation of iface.MenuService
type MockMenuService struct {
	ListFunc       func(ctx context.Context, filters api.MenuFilters) ([]api.MenuItem, error)
	CategoriesFunc func(ctx context.Context) ([]api.Category, error)
}

func (m *MockMenuService) List(ctx context.Context, filters api.MenuFilters) ([]api.MenuItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, nil
}

func (m *MockMenuService) Categories(ctx context.Context) ([]api.Category, error) {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx)
	}
	return nil, nil
}

// MockTableService is a mock implementation of iface.TableService
type MockTableService struct {
	ListFunc func(ctx context.Context) ([]api.Table, error)
}

func (m *MockTableService) List(ctx context.Context) ([]api.Table, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// MockInvoiceService is a mock implementation of iface.InvoiceService
type MockInvoiceService struct {
	ListFunc  func(ctx context.Context, filters api.InvoiceFilters) ([]api.Invoice, error)
	GetFunc   func(ctx context.Context, id int64) (*api.Invoice, error)
	IssueFunc func(ctx context.Context, orderID int64) (int64, error)
}

func (m *MockInvoiceService) List(ctx context.Context, filters api.InvoiceFilters) ([]api.Invoice, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, nil
}

func (m *MockInvoiceService) Get(ctx context.Context, id int64) (*api.Invoice, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockInvoiceService) Issue(ctx context.Context, orderID int64) (int64, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, orderID)
	}
	return 0, nil
}

// MockUserService is a mock implementation of iface.UserService
type MockUserService struct {
	ListFunc func(ctx context.Context, filters api.UserFilters) ([]api.User, error)
	GetFunc  func(ctx context.Context, id string) (*api.User, error)
}

func (m *MockUserService) List(ctx context.Context, filters api.UserFilters) ([]api.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, nil
}

func (m *MockUserService) Get(ctx context.Context, id string) (*api.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}
