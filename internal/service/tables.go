package service

import (
	"context"
	"fmt"

	"github.com/restaurapp/restaurapp-cli/internal/api"
	iface "github.com/restaurapp/restaurapp-cli/internal/service/interface"
)

// tableService implements iface.TableService
type tableService struct {
	tables *api.TablesClient
}

// NewTableService creates a new table service
func NewTableService(tables *api.TablesClient) iface.TableService {
	return &tableService{
		tables: tables,
	}
}

// List returns all dining tables
func (s *tableService) List(ctx context.Context) ([]api.Table, error) {
	tables, err := s.tables.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tables: %w", err)
	}

	return tables, nil
}
