// Package session owns the client-side session lifecycle: where the
// token lives, how it is restored at startup, and how login, register,
// and logout move the session between states.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store persists the raw session token between runs.
//
// Implementations must be safe for concurrent use. An absent token is
// not an error: Read returns ("", nil) and Clear is a no-op.
type Store interface {
	// Read returns the stored token, or "" when none is stored.
	Read() (string, error)

	// Write replaces the stored token.
	Write(raw string) error

	// Clear removes the stored token. Clearing an empty store succeeds.
	Clear() error
}

// FileStore keeps the token in a single file with owner-only
// permissions, the same way ssh keeps private keys.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path. The file
// and its directory are created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read returns the stored token.
func (s *FileStore) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read session token %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Write replaces the stored token.
func (s *FileStore) Write(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(raw), 0600); err != nil {
		return fmt.Errorf("write session token %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the stored token.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session token %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore is an in-memory Store for tests and ephemeral sessions.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Read returns the stored token.
func (s *MemoryStore) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Write replaces the stored token.
func (s *MemoryStore) Write(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = raw
	return nil
}

// Clear removes the stored token.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
