package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Role is an application role carried in the access token claims
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleWaiter  Role = "mesero"
	RoleCook    Role = "cocinero"
	RoleCashier Role = "cajero"
)

// User is a staff account
type User struct {
	ID     string `json:"id"`
	Code   int64  `json:"codigo"`
	Name   string `json:"nombre"`
	Email  string `json:"email"`
	Role   Role   `json:"rol"`
	Active bool   `json:"activo"`
}

// CreateUserRequest is the body for creating a user
type CreateUserRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"rol"`
	Active   *bool  `json:"activo,omitempty"`
}

// UserPatch updates user fields; nil fields are left untouched
type UserPatch struct {
	Name     *string `json:"nombre,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *Role   `json:"rol,omitempty"`
	Active   *bool   `json:"activo,omitempty"`
}

// UserFilters narrows the user list
type UserFilters struct {
	Role   Role
	Active *bool
}

func (f UserFilters) values() url.Values {
	q := url.Values{}
	if f.Role != "" {
		q.Set("rol", string(f.Role))
	}
	if f.Active != nil {
		q.Set("activo", strconv.FormatBool(*f.Active))
	}
	return q
}

// UsersClient accesses the user endpoints
type UsersClient struct {
	api *Client
}

// NewUsersClient creates a new users client
func NewUsersClient(api *Client) *UsersClient {
	return &UsersClient{api: api}
}

// List fetches users matching the given filters
func (c *UsersClient) List(ctx context.Context, filters UserFilters) ([]User, error) {
	var resp Response[[]User]
	if err := c.api.Get(ctx, "/users", filters.values(), &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Get fetches a single user by ID
func (c *UsersClient) Get(ctx context.Context, id string) (*User, error) {
	var resp Response[User]
	if err := c.api.Get(ctx, "/users/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetByCode fetches a single user by their short staff code
func (c *UsersClient) GetByCode(ctx context.Context, code int64) (*User, error) {
	var resp Response[User]
	if err := c.api.Get(ctx, fmt.Sprintf("/users/codigo/%d", code), nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Create adds a user and returns the new ID and staff code
func (c *UsersClient) Create(ctx context.Context, req CreateUserRequest) (string, int64, error) {
	var resp Response[struct {
		ID   string `json:"id"`
		Code int64  `json:"codigo"`
	}]
	if err := c.api.Post(ctx, "/users", req, &resp); err != nil {
		return "", 0, err
	}
	if err := resp.Err(); err != nil {
		return "", 0, err
	}
	return resp.Data.ID, resp.Data.Code, nil
}

// Update patches user fields
func (c *UsersClient) Update(ctx context.Context, id string, patch UserPatch) error {
	var resp Response[struct{}]
	if err := c.api.Patch(ctx, "/users/"+url.PathEscape(id), patch, &resp); err != nil {
		return err
	}
	return resp.Err()
}

// Delete removes a user
func (c *UsersClient) Delete(ctx context.Context, id string) error {
	var resp Response[struct{}]
	if err := c.api.Delete(ctx, "/users/"+url.PathEscape(id), &resp); err != nil {
		return err
	}
	return resp.Err()
}
