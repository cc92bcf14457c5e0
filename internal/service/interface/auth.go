// Package iface defines service interfaces for the RestaurApp CLI.
// These interfaces enable dependency injection and mocking for tests.
package iface

import (
	"context"

	"github.com/restaurapp/restaurapp-cli/internal/session"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Login authenticates with email and password and installs a session
	Login(ctx context.Context, email, password string) error

	// Logout clears the local session and invalidates it server-side
	Logout(ctx context.Context) error

	// IsLoggedIn checks if a non-expired session exists
	IsLoggedIn() bool

	// Session returns the current session, or nil when unauthenticated
	Session() *session.Session
}
