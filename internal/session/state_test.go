package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateEmpty(t *testing.T) {
	state := NewState()

	assert.Nil(t, state.Current())
	assert.False(t, state.IsAuthenticated())
	assert.Empty(t, state.Role())
	assert.Empty(t, state.Subject())
}

func TestStateAuthenticationFollowsClock(t *testing.T) {
	// isAuthenticated is computed fresh on every call, so it flips to
	// false as the clock passes expiry without any mutation.
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := t0

	state := NewState()
	state.now = func() time.Time { return clock }

	state.Set(&Session{
		AccessToken: "a1",
		ExpiresAt:   t0.Add(time.Hour).UnixMilli(),
		Role:        "cajero",
		Subject:     "c1",
	})

	assert.True(t, state.IsAuthenticated())
	assert.Equal(t, "cajero", state.Role())
	assert.Equal(t, "c1", state.Subject())

	// Exactly at expiry the token is no longer valid (strict check).
	clock = t0.Add(time.Hour)
	assert.False(t, state.IsAuthenticated())

	clock = t0
	assert.True(t, state.IsAuthenticated())

	clock = t0.Add(time.Hour + time.Millisecond)
	assert.False(t, state.IsAuthenticated())
}

func TestStateObservers(t *testing.T) {
	state := NewState()

	var seen []*Session
	state.Subscribe(func(sess *Session) {
		seen = append(seen, sess)
	})

	sess := &Session{AccessToken: "a1", ExpiresAt: 1}
	state.Set(sess)
	state.Set(nil)

	assert.Equal(t, []*Session{sess, nil}, seen)
}
