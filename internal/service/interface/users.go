package iface

import (
	"context"

	"github.com/restaurapp/restaurapp-cli/internal/api"
)

// UserService defines the interface for staff account operations
type UserService interface {
	// List fetches users matching the given filters
	List(ctx context.Context, filters api.UserFilters) ([]api.User, error)

	// Get fetches a single user by ID
	Get(ctx context.Context, id string) (*api.User, error)
}
