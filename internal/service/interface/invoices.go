package iface

import (
	"context"

	"github.com/restaurapp/restaurapp-cli/internal/api"
)

// InvoiceService defines the interface for invoice operations
type InvoiceService interface {
	// List fetches invoices matching the given filters
	List(ctx context.Context, filters api.InvoiceFilters) ([]api.Invoice, error)

	// Get fetches a single invoice
	Get(ctx context.Context, id int64) (*api.Invoice, error)

	// Issue generates an invoice for a closed order and returns its ID
	Issue(ctx context.Context, orderID int64) (int64, error)
}
