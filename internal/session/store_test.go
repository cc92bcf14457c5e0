package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	sess := &Session{
		AccessToken:  "a1",
		RefreshToken: "r1",
		ExpiresAt:    3_600_000,
		Role:         "admin",
		Subject:      "user@x.com",
	}

	require.NoError(t, store.Save(sess))
	assert.Equal(t, sess, store.Load())

	require.NoError(t, store.Clear())
	assert.Nil(t, store.Load())
}

func TestStoreLoadMissingFile(t *testing.T) {
	assert.Nil(t, newTestStore(t).Load())
}

func TestStoreLoadMalformedJSON(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0700))
	require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0600))

	assert.Nil(t, store.Load())
}

func TestStoreLoadWithoutAccessToken(t *testing.T) {
	// A record with no access token is corrupt and treated as absent.
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0700))
	require.NoError(t, os.WriteFile(store.path, []byte(`{"refreshToken":"r1"}`), 0600))

	assert.Nil(t, store.Load())
}

func TestStoreClearMissingFile(t *testing.T) {
	assert.NoError(t, newTestStore(t).Clear())
}

func TestStorePersistedLayout(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(&Session{
		AccessToken:  "a1",
		RefreshToken: "r1",
		ExpiresAt:    42,
		Role:         "mesero",
		Subject:      "w1",
	}))

	data, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"accessToken": "a1",
		"refreshToken": "r1",
		"expiresAt": 42,
		"role": "mesero",
		"subject": "w1"
	}`, string(data))
}
