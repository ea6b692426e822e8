// Package token persists the bearer credential in its scoped storage
// location. The ledger core only ever reads the token; writing happens in
// the CLI auth flow (login/register) and nowhere else.
package token

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store is a file-backed credential store. The file is owner-readable only.
type Store struct {
	path string
}

// NewStore creates a store reading and writing the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token returns the stored credential, or "" when none has been saved.
// A missing token is not an error: unauthenticated requests simply go out
// without an Authorization header.
func (s *Store) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the credential, creating the parent directory if needed.
func (s *Store) Save(tok string) error {
	if strings.TrimSpace(tok) == "" {
		return errors.New("refusing to save empty token")
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create token directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(tok+"\n"), 0600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the stored credential. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// Path returns the storage location.
func (s *Store) Path() string {
	return s.path
}
