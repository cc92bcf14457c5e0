package service

import (
	"context"
	"fmt"

	"github.com/restaurapp/restaurapp-cli/internal/api"
	iface "github.com/restaurapp/restaurapp-cli/internal/service/interface"
)

// invoiceService implements iface.InvoiceService
type invoiceService struct {
	invoices *api.InvoicesClient
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoices *api.InvoicesClient) iface.InvoiceService {
	return &invoiceService{
		invoices: invoices,
	}
}

// List returns invoices matching the given filters
func (s *invoiceService) List(ctx context.Context, filters api.InvoiceFilters) ([]api.Invoice, error) {
	invoices, err := s.invoices.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	return invoices, nil
}

// Get returns a single invoice
func (s *invoiceService) Get(ctx context.Context, id int64) (*api.Invoice, error) {
	invoice, err := s.invoices.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice %d: %w", id, err)
	}

	return invoice, nil
}

// Issue generates an invoice for a closed order
func (s *invoiceService) Issue(ctx context.Context, orderID int64) (int64, error) {
	id, err := s.invoices.Issue(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to issue invoice for order %d: %w", orderID, err)
	}

	return id, nil
}
