package service

import (
	"context"
	"fmt"

	"github.com/restaurapp/restaurapp-cli/internal/api"
	iface "github.com/restaurapp/restaurapp-cli/internal/service/interface"
)

// menuService implements iface.MenuService
type menuService struct {
	menu       *api.MenuClient
	categories *api.CategoriesClient
}

// NewMenuService creates a new menu service
func NewMenuService(menu *api.MenuClient, categories *api.CategoriesClient) iface.MenuService {
	return &menuService{
		menu:       menu,
		categories: categories,
	}
}

// List returns menu items matching the given filters
func (s *menuService) List(ctx context.Context, filters api.MenuFilters) ([]api.MenuItem, error) {
	items, err := s.menu.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu: %w", err)
	}

	return items, nil
}

// Categories returns all menu categories
func (s *menuService) Categories(ctx context.Context) ([]api.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, nil
}
