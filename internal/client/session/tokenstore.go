package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// tokenFileName is the fixed key the session token lives under in the
// client's data directory.
const tokenFileName = "session_token"

// TokenStore persists the session token across app restarts.
type TokenStore struct {
	path string
}

func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{path: filepath.Join(dir, tokenFileName)}
}

// Load returns the stored token, or "" when none has been saved.
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *TokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
