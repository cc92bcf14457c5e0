package service

import (
	"context"
	"fmt"

	iface "github.com/restaurapp/restaurapp-cli/internal/service/interface"
	"github.com/restaurapp/restaurapp-cli/internal/session"
)

// authService implements iface.AuthService
type authService struct {
	sessions *session.Manager
}

// NewAuthService creates a new authentication service
func NewAuthService(sessions *session.Manager) iface.AuthService {
	return &authService{
		sessions: sessions,
	}
}

// Login authenticates with email and password and installs the session
func (s *authService) Login(ctx context.Context, email, password string) error {
	if s.sessions.IsAuthenticated() {
		return fmt.Errorf("already logged in as %s. Use 'restaurapp logout' first to log out", s.sessions.Subject())
	}

	if _, err := s.sessions.Login(ctx, email, password); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	return nil
}

// Logout clears the local session and notifies the server
func (s *authService) Logout(ctx context.Context) error {
	if s.sessions.Session() == nil {
		return fmt.Errorf("not logged in")
	}

	return s.sessions.Logout(ctx)
}

// IsLoggedIn checks if the user currently holds a live session
func (s *authService) IsLoggedIn() bool {
	return s.sessions.IsAuthenticated()
}

// Session returns the current session, or nil when logged out
func (s *authService) Session() *session.Session {
	return s.sessions.Session()
}
