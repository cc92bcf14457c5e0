package iface

import (
	"context"

	"github.com/restaurapp/restaurapp-cli/internal/api"
)

// MenuService defines the interface for menu catalog operations
type MenuService interface {
	// List fetches menu items matching the given filters
	List(ctx context.Context, filters api.MenuFilters) ([]api.MenuItem, error)

	// Categories fetches all menu categories
	Categories(ctx context.Context) ([]api.Category, error)
}
