package session

import (
	"sync"
	"time"
)

// Observer is notified after every session mutation. Observers run
// synchronously in the mutating call, so a write-through observer
// completes before the next read in the same flow.
type Observer func(*Session)

// State holds the current session as the single source of truth for
// the rest of the application.
type State struct {
	mu        sync.RWMutex
	current   *Session
	observers []Observer

	// now is the clock; overridable in tests
	now func() time.Time
}

// NewState creates an empty (unauthenticated) state
func NewState() *State {
	return &State{now: time.Now}
}

// Current returns the current session, or nil when unauthenticated
func (s *State) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set atomically replaces the current session (nil clears it) and
// notifies every observer.
func (s *State) Set(sess *Session) {
	s.mu.Lock()
	s.current = sess
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(sess)
	}
}

// Subscribe registers an observer for session mutations
func (s *State) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// IsAuthenticated reports whether a session exists and its access token
// has not expired. The check is evaluated against the clock on every
// call, so it flips to false the moment the expiry passes.
func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.ActiveAt(s.now())
}

// Role returns the decoded role claim, or "" when unauthenticated
func (s *State) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Role
}

// Subject returns the decoded subject claim, or "" when unauthenticated
func (s *State) Subject() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Subject
}
