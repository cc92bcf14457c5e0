package service

import (
	"context"
	"fmt"

	"github.com/restaurapp/restaurapp-cli/internal/api"
	iface "github.com/restaurapp/restaurapp-cli/internal/service/interface"
)

// userService implements iface.UserService
type userService struct {
	users *api.UsersClient
}

// NewUserService creates a new user service
func NewUserService(users *api.UsersClient) iface.UserService {
	return &userService{
		users: users,
	}
}

// List returns users matching the given filters
func (s *userService) List(ctx context.Context, filters api.UserFilters) ([]api.User, error) {
	users, err := s.users.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, nil
}

// Get returns a single user by ID
func (s *userService) Get(ctx context.Context, id string) (*api.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}

	return user, nil
}
