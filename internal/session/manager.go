package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/restaurapp/restaurapp-cli/internal/api"
	"github.com/restaurapp/restaurapp-cli/internal/token"
)

const (
	// refreshMargin is how long before expiry the proactive refresh runs
	refreshMargin = time.Minute

	// minRefreshDelay is the floor for the proactive refresh timer
	minRefreshDelay = 5 * time.Second
)

var (
	// ErrNoRefreshToken is returned when a refresh is requested but the
	// session has no refresh token. No network call is made.
	ErrNoRefreshToken = errors.New("no refresh token available")

	// ErrSessionReplaced is returned when a refresh resolved after the
	// session it was issued against was logged out or replaced.
	ErrSessionReplaced = errors.New("session replaced during refresh")
)

// AuthAPI is the slice of the backend auth surface the manager needs
type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) (*api.TokenGrant, error)
	Refresh(ctx context.Context, refreshToken string) (*api.TokenGrant, error)
	Logout(ctx context.Context) error
}

// Manager orchestrates the session lifecycle: login, logout, startup
// rehydration, proactive refresh scheduling, and deduplicated refresh.
// It implements api.TokenSource for the request interceptor.
type Manager struct {
	authAPI AuthAPI
	store   *Store
	state   *State

	// refreshGroup collapses concurrent refresh attempts into one
	// in-flight network call; late callers join it and share the outcome.
	refreshGroup singleflight.Group

	timerMu sync.Mutex
	timer   *time.Timer

	// now is the clock; overridable in tests
	now func() time.Time
}

// NewManager creates a session manager. Call Restore once at startup to
// rehydrate a persisted session.
func NewManager(authAPI AuthAPI, store *Store) *Manager {
	m := &Manager{
		authAPI: authAPI,
		store:   store,
		state:   NewState(),
		now:     time.Now,
	}

	// Persistence rides on state mutations: every Set writes through to
	// (or removes from) the store before it returns. Storage failures
	// degrade to "re-login required" and are never surfaced.
	m.state.Subscribe(func(sess *Session) {
		if sess == nil {
			if err := m.store.Clear(); err != nil {
				log.Warn().Err(err).Msg("failed to remove persisted session")
			}
			return
		}
		if err := m.store.Save(sess); err != nil {
			log.Warn().Err(err).Msg("failed to persist session")
		}
	})

	return m
}

// Restore rehydrates the persisted session at process start. A live
// session is adopted as-is; an expired one with a refresh token gets
// one refresh attempt; anything else clears the slate.
func (m *Manager) Restore(ctx context.Context) {
	sess := m.store.Load()
	if sess == nil {
		m.clearSession()
		return
	}

	if sess.ActiveAt(m.now()) {
		m.installSession(sess)
		return
	}

	if sess.RefreshToken != "" {
		// Adopt the expired session so the refresh token is reachable;
		// IsAuthenticated stays false until the refresh lands.
		m.state.Set(sess)
		if _, err := m.RefreshAccessToken(ctx); err != nil {
			log.Debug().Err(err).Msg("startup session refresh failed")
		}
		return
	}

	m.clearSession()
}

// Login exchanges credentials for a session. Auth endpoint failures are
// propagated untouched; they are always user-facing.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	grant, err := m.authAPI.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	sess := m.sessionFromGrant(grant, grant.RefreshToken)
	m.installSession(sess)
	log.Debug().Str("subject", sess.Subject).Str("role", sess.Role).Msg("logged in")
	return sess, nil
}

// Logout drops the session locally before the server call starts, so no
// reader ever observes an authenticated state during a pending logout.
// The server-side invalidation is best effort.
func (m *Manager) Logout(ctx context.Context) error {
	m.clearSession()
	if err := m.authAPI.Logout(ctx); err != nil {
		log.Debug().Err(err).Msg("server-side logout failed")
	}
	return nil
}

// RefreshAccessToken renews the access token using the stored refresh
// token. Concurrent callers share a single in-flight request and all
// receive the same outcome. A failed refresh clears the session.
func (m *Manager) RefreshAccessToken(ctx context.Context) (string, error) {
	if !m.HasRefreshToken() {
		return "", ErrNoRefreshToken
	}

	result, err, _ := m.refreshGroup.Do("refresh", func() (interface{}, error) {
		return m.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (m *Manager) refresh(ctx context.Context) (interface{}, error) {
	current := m.state.Current()
	if current == nil || current.RefreshToken == "" {
		return "", ErrNoRefreshToken
	}

	grant, err := m.authAPI.Refresh(ctx, current.RefreshToken)
	if err != nil {
		// The session is no longer renewable; force re-authentication.
		m.clearSession()
		return "", err
	}

	// Discard a result that raced with a logout or a newer login: an
	// obsolete refresh must not resurrect a replaced session.
	latest := m.state.Current()
	if latest == nil || latest.RefreshToken != current.RefreshToken {
		return "", ErrSessionReplaced
	}

	// The refresh grant carries no refresh token; the existing one
	// stays valid and is carried over unchanged.
	next := m.sessionFromGrant(grant, current.RefreshToken)
	m.installSession(next)
	log.Debug().Time("expires_at", next.ExpiresAtTime()).Msg("access token refreshed")
	return next.AccessToken, nil
}

// GetAccessToken returns the current access token, or "" when
// unauthenticated.
func (m *Manager) GetAccessToken() string {
	if sess := m.state.Current(); sess != nil {
		return sess.AccessToken
	}
	return ""
}

// HasRefreshToken reports whether the session can be silently renewed
func (m *Manager) HasRefreshToken() bool {
	sess := m.state.Current()
	return sess != nil && sess.RefreshToken != ""
}

// IsAuthenticated reports whether a non-expired session exists
func (m *Manager) IsAuthenticated() bool {
	return m.state.IsAuthenticated()
}

// Role returns the decoded role claim for display purposes
func (m *Manager) Role() string {
	return m.state.Role()
}

// Subject returns the decoded subject claim for display purposes
func (m *Manager) Subject() string {
	return m.state.Subject()
}

// Session returns the current session, or nil when unauthenticated
func (m *Manager) Session() *Session {
	return m.state.Current()
}

// Subscribe registers an observer for session mutations
func (m *Manager) Subscribe(fn Observer) {
	m.state.Subscribe(fn)
}

func (m *Manager) sessionFromGrant(grant *api.TokenGrant, refreshToken string) *Session {
	return &Session{
		AccessToken:  grant.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    m.now().UnixMilli() + grant.ExpiresIn*1000,
		Role:         token.Role(grant.AccessToken),
		Subject:      token.Subject(grant.AccessToken),
	}
}

// installSession makes the session current and re-arms the proactive
// refresh timer.
func (m *Manager) installSession(sess *Session) {
	m.state.Set(sess)
	m.scheduleRefresh(sess.ExpiresAt)
}

func (m *Manager) clearSession() {
	m.cancelTimer()
	m.state.Set(nil)
}

// refreshDelay computes how long to wait before proactively refreshing
// a token expiring at the given epoch-millisecond instant.
func refreshDelay(expiresAt int64, now time.Time) time.Duration {
	delay := time.Duration(expiresAt-now.UnixMilli())*time.Millisecond - refreshMargin
	if delay < minRefreshDelay {
		delay = minRefreshDelay
	}
	return delay
}

// scheduleRefresh arms the proactive refresh timer, canceling any timer
// armed for a previous session. At most one timer is pending.
func (m *Manager) scheduleRefresh(expiresAt int64) {
	m.timerMu.Lock()
	defer m.timerMu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(refreshDelay(expiresAt, m.now()), m.onRefreshTimer)
}

func (m *Manager) cancelTimer() {
	m.timerMu.Lock()
	defer m.timerMu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Manager) onRefreshTimer() {
	if !m.HasRefreshToken() {
		return
	}
	if _, err := m.RefreshAccessToken(context.Background()); err != nil {
		// refresh already cleared the session on failure; no retry loop
		log.Debug().Err(err).Msg("scheduled token refresh failed")
	}
}
