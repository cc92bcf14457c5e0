package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/restaurapp/restaurapp-cli/internal/api"
	"github.com/restaurapp/restaurapp-cli/internal/di"
)

// newTestRoot builds a root command wired to a container of mocks
func newTestRoot(auth *MockAuthService, orders *MockOrderService) *RootCommand {
	if auth == nil {
		auth = &MockAuthService{}
	}
	if orders == nil {
		orders = &MockOrderService{}
	}

	container := di.NewContainerWithServices(
		auth,
		orders,
		&MockMenuService{},
		&MockTableService{},
		&MockInvoiceService{},
		&MockUserService{},
	)

	root := NewRootCommand()
	root.SetContainer(container)
	return root
}

// captureStdout runs fn with os.Stdout redirected and returns what it printed
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()

	w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), err
}

func TestOrdersListCommand_Run(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		mockOrders    []api.OrderSummary
		mockError     error
		wantOutput    []string
		wantNotOutput []string
		wantErr       bool
	}{
		{
			name: "successfully lists orders in table format",
			args: []string{"orders", "list"},
			mockOrders: []api.OrderSummary{
				{ID: 42, TableNumber: "4", Status: api.OrderOpen, Total: 25.50},
				{ID: 43, TableNumber: "7", Status: api.OrderReady, Total: 18.00},
			},
			wantOutput: []string{"42", "ABIERTO", "25.50", "43", "LISTO", "18.00"},
			wantErr:    false,
		},
		{
			name:       "shows empty message when no orders",
			args:       []string{"orders", "list"},
			mockOrders: []api.OrderSummary{},
			wantOutput: []string{"No orders found"},
			wantErr:    false,
		},
		{
			name: "outputs JSON format",
			args: []string{"orders", "list", "-o", "json"},
			mockOrders: []api.OrderSummary{
				{ID: 42, TableNumber: "4", Status: api.OrderOpen, Total: 25.50},
			},
			wantOutput:    []string{`"id": 42`, `"estado": "ABIERTO"`},
			wantNotOutput: []string{"No orders found"},
			wantErr:       false,
		},
		{
			name:      "returns error when service fails",
			args:      []string{"orders", "list"},
			mockError: context.DeadlineExceeded,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrders := &MockOrderService{
				ListFunc: func(ctx context.Context, filters api.OrderFilters) ([]api.OrderSummary, error) {
					if tt.mockError != nil {
						return nil, tt.mockError
					}
					return tt.mockOrders, nil
				},
			}

			root := newTestRoot(nil, mockOrders)
			root.Command().SetArgs(tt.args)

			output, err := captureStdout(t, root.Command().Execute)

			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			for _, want := range tt.wantOutput {
				if !strings.Contains(output, want) {
					t.Errorf("Output should contain %q, got: %s", want, output)
				}
			}

			for _, notWant := range tt.wantNotOutput {
				if strings.Contains(output, notWant) {
					t.Errorf("Output should not contain %q, got: %s", notWant, output)
				}
			}
		})
	}
}

func TestOrdersListCommand_Filters(t *testing.T) {
	var gotFilters api.OrderFilters
	mockOrders := &MockOrderService{
		ListFunc: func(ctx context.Context, filters api.OrderFilters) ([]api.OrderSummary, error) {
			gotFilters = filters
			return nil, nil
		},
	}

	root := newTestRoot(nil, mockOrders)
	root.Command().SetArgs([]string{"orders", "list", "--table", "4", "--status", "abierto"})

	if _, err := captureStdout(t, root.Command().Execute); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if gotFilters.TableID != 4 {
		t.Errorf("TableID = %d, want 4", gotFilters.TableID)
	}
	if gotFilters.Status != api.OrderOpen {
		t.Errorf("Status = %q, want %q", gotFilters.Status, api.OrderOpen)
	}
}

func TestOrdersShowCommand_Run(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		mockOrder  *api.Order
		mockError  error
		wantOutput []string
		wantErr    bool
	}{
		{
			name: "shows order detail with items",
			args: []string{"orders", "show", "42"},
			mockOrder: &api.Order{
				ID:          42,
				TableNumber: "4",
				Status:      api.OrderInPreparation,
				Total:       25.50,
				Items: []api.OrderItem{
					{ID: 1, MenuItemName: "Ceviche", Quantity: 2, UnitPrice: 10.00, Subtotal: 20.00, PrepStatus: api.ItemInPreparation},
					{ID: 2, MenuItemName: "Limonada", Quantity: 1, UnitPrice: 5.50, Subtotal: 5.50, PrepStatus: api.ItemPending},
				},
			},
			wantOutput: []string{"#42", "EN_PREPARACION", "Ceviche", "Limonada", "PENDIENTE"},
			wantErr:    false,
		},
		{
			name: "outputs JSON format",
			args: []string{"orders", "show", "42", "-o", "json"},
			mockOrder: &api.Order{
				ID:     42,
				Status: api.OrderOpen,
			},
			wantOutput: []string{`"id": 42`},
			wantErr:    false,
		},
		{
			name:    "rejects a non-numeric order ID",
			args:    []string{"orders", "show", "abc"},
			wantErr: true,
		},
		{
			name:      "returns error when service fails",
			args:      []string{"orders", "show", "42"},
			mockError: context.DeadlineExceeded,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrders := &MockOrderService{
				GetFunc: func(ctx context.Context, id int64) (*api.Order, error) {
					if tt.mockError != nil {
						return nil, tt.mockError
					}
					return tt.mockOrder, nil
				},
			}

			root := newTestRoot(nil, mockOrders)
			root.Command().SetArgs(tt.args)

			output, err := captureStdout(t, root.Command().Execute)

			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			for _, want := range tt.wantOutput {
				if !strings.Contains(output, want) {
					t.Errorf("Output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestOrdersCreateCommand_Flags(t *testing.T) {
	var gotReq api.CreateOrderRequest
	mockOrders := &MockOrderService{
		CreateFunc: func(ctx context.Context, req api.CreateOrderRequest) (int64, error) {
			gotReq = req
			return 99, nil
		},
	}

	root := newTestRoot(nil, mockOrders)
	root.Command().SetArgs([]string{"orders", "create", "--table", "4", "--item", "12:2", "--item", "7"})

	output, err := captureStdout(t, root.Command().Execute)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if gotReq.TableID != 4 {
		t.Errorf("TableID = %d, want 4", gotReq.TableID)
	}
	if gotReq.WaiterID != "tester@restaurapp.com" {
		t.Errorf("WaiterID = %q, want the logged-in subject", gotReq.WaiterID)
	}
	if len(gotReq.Items) != 2 {
		t.Fatalf("Items length = %d, want 2", len(gotReq.Items))
	}
	if gotReq.Items[0].MenuItemID != 12 || gotReq.Items[0].Quantity != 2 {
		t.Errorf("Items[0] = %+v, want menu item 12 x2", gotReq.Items[0])
	}
	if gotReq.Items[1].MenuItemID != 7 || gotReq.Items[1].Quantity != 1 {
		t.Errorf("Items[1] = %+v, want menu item 7 x1 (default quantity)", gotReq.Items[1])
	}

	if !strings.Contains(output, "#99") {
		t.Errorf("Output should mention the new order ID, got: %s", output)
	}
}

func TestOrdersCreateCommand_RejectsBadItemFlag(t *testing.T) {
	root := newTestRoot(nil, &MockOrderService{})
	root.Command().SetArgs([]string{"orders", "create", "--table", "4", "--item", "nope"})

	if _, err := captureStdout(t, root.Command().Execute); err == nil {
		t.Fatal("Execute() expected an error for a malformed --item flag")
	}
}

func TestOrdersTransitionCommands(t *testing.T) {
	tests := []struct {
		verb       string
		wantOutput string
	}{
		{verb: "send", wantOutput: "sent to kitchen"},
		{verb: "ready", wantOutput: "marked ready"},
		{verb: "deliver", wantOutput: "marked delivered"},
		{verb: "cancel", wantOutput: "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.verb, func(t *testing.T) {
			var gotID int64
			record := func(ctx context.Context, id int64) error {
				gotID = id
				return nil
			}
			mockOrders := &MockOrderService{
				SendToKitchenFunc: record,
				MarkReadyFunc:     record,
				MarkDeliveredFunc: record,
				CancelFunc:        record,
			}

			root := newTestRoot(nil, mockOrders)
			root.Command().SetArgs([]string{"orders", tt.verb, "42"})

			output, err := captureStdout(t, root.Command().Execute)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			if gotID != 42 {
				t.Errorf("order ID = %d, want 42", gotID)
			}
			if !strings.Contains(output, tt.wantOutput) {
				t.Errorf("Output should contain %q, got: %s", tt.wantOutput, output)
			}
		})
	}
}

func TestOrdersPayCommand_Run(t *testing.T) {
	var gotAmount float64
	var gotMethod string
	mockOrders := &MockOrderService{
		PayFunc: func(ctx context.Context, orderID int64, amount float64, method string) (*api.PaymentReceipt, error) {
			gotAmount = amount
			gotMethod = method
			return &api.PaymentReceipt{ID: 7, Change: 4.50}, nil
		},
	}

	root := newTestRoot(nil, mockOrders)
	root.Command().SetArgs([]string{"orders", "pay", "42", "--amount", "30", "--method", "tarjeta"})

	output, err := captureStdout(t, root.Command().Execute)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if gotAmount != 30 {
		t.Errorf("amount = %v, want 30", gotAmount)
	}
	if gotMethod != api.PaymentCard {
		t.Errorf("method = %q, want %q", gotMethod, api.PaymentCard)
	}
	if !strings.Contains(output, "Change due: 4.50") {
		t.Errorf("Output should mention the change due, got: %s", output)
	}
}

func TestOrdersPayCommand_RequiresAmount(t *testing.T) {
	root := newTestRoot(nil, &MockOrderService{})
	root.Command().SetArgs([]string{"orders", "pay", "42"})

	if _, err := captureStdout(t, root.Command().Execute); err == nil {
		t.Fatal("Execute() expected an error when --amount is missing")
	}
}

func TestOrdersPaymentsCommand_Run(t *testing.T) {
	mockOrders := &MockOrderService{
		PaymentsFunc: func(ctx context.Context, orderID int64) (*api.PaymentsSummary, error) {
			return &api.PaymentsSummary{
				Payments: []api.Payment{
					{ID: 1, Amount: 20, Method: api.PaymentCash, Status: api.PaymentApplied},
				},
				BalanceDue: 5.50,
			}, nil
		},
	}

	root := newTestRoot(nil, mockOrders)
	root.Command().SetArgs([]string{"orders", "payments", "42"})

	output, err := captureStdout(t, root.Command().Execute)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"EFECTIVO", "APLICADO", "Balance due: 5.50"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q, got: %s", want, output)
		}
	}
}
