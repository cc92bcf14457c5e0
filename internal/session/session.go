// Package session owns the authentication session lifecycle: the
// current token pair, its durable persistence across CLI invocations,
// proactive refresh before expiry, and the recovery policy when the
// backend rejects a credential.
package session

import "time"

// Session is the sole mutable authentication aggregate. It either
// exists with a non-empty access token and a valid expiry, or the user
// is unauthenticated.
type Session struct {
	// AccessToken is the opaque bearer credential
	AccessToken string `json:"accessToken"`

	// RefreshToken renews the session silently; when absent the
	// session cannot outlive its access token
	RefreshToken string `json:"refreshToken,omitempty"`

	// ExpiresAt is the access token expiry in epoch milliseconds
	ExpiresAt int64 `json:"expiresAt"`

	// Role and Subject are best-effort decodes of the access token's
	// claims, kept for display only. The backend enforces authorization
	// on every request.
	Role    string `json:"role,omitempty"`
	Subject string `json:"subject,omitempty"`
}

// ExpiresAtTime returns the expiry as a time.Time
func (s *Session) ExpiresAtTime() time.Time {
	return time.UnixMilli(s.ExpiresAt)
}

// ActiveAt reports whether the access token is still valid at the given
// instant (strictly before expiry).
func (s *Session) ActiveAt(now time.Time) bool {
	return now.UnixMilli() < s.ExpiresAt
}
