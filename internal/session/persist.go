// ABOUTME: Persisters that save and restore the whole session record
// ABOUTME: FileStore keeps it in the XDG config directory, MemoryStore in process

package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Persister reads and writes the whole session record
type Persister interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "storefront")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "storefront")
}

// FileStore persists the session as JSON in a config directory
type FileStore struct {
	configDir string
}

// NewFileStore creates a FileStore rooted at configDir
func NewFileStore(configDir string) *FileStore {
	return &FileStore{configDir: configDir}
}

// Path returns the session file location
func (fs *FileStore) Path() string {
	return filepath.Join(fs.configDir, StorageKey+".json")
}

// Load reads the session record. A missing or unparsable file yields an empty session.
func (fs *FileStore) Load(_ context.Context) (State, error) {
	data, err := os.ReadFile(fs.Path())
	if os.IsNotExist(err) {
		return State{}, nil
	}
	if err != nil {
		return State{}, err
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		// Invalid JSON, start fresh
		return State{}, nil
	}
	return st, nil
}

// Save writes the session record, readable by the owner only
func (fs *FileStore) Save(_ context.Context, st State) error {
	if err := os.MkdirAll(fs.configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fs.Path(), data, 0600)
}

// MemoryStore keeps the session record in process memory
type MemoryStore struct {
	mu    sync.Mutex
	state State
	saves int
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last saved record
func (m *MemoryStore) Load(_ context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, nil
}

// Save replaces the record
func (m *MemoryStore) Save(_ context.Context, st State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = st
	m.saves++
	return nil
}

// Saves returns how many times Save was called
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
