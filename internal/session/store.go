package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Store persists the current session to a single JSON file so it
// survives CLI restarts. Unreadable or corrupt state degrades to "not
// logged in", never to an error the user sees.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted session. It returns nil for a missing file,
// malformed JSON, or a record without an access token (treated as
// corrupt).
func (s *Store) Load() *Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil
	}
	if sess.AccessToken == "" {
		return nil
	}
	return &sess
}

// Save writes the session to disk with owner-only permissions
func (s *Store) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0600)
}

// Clear removes the persisted session. A missing file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
