package iface

import (
	"context"

	"github.com/restaurapp/restaurapp-cli/internal/api"
)

// TableService defines the interface for dining table operations
type TableService interface {
	// List fetches all tables
	List(ctx context.Context) ([]api.Table, error)
}
