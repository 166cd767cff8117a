package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/ideal-institute/bookstall/internal/config"
	"github.com/ideal-institute/bookstall/internal/storage/sqlite"
)

const (
	// BackendSQLite selects the SQLite key-value table.
	BackendSQLite = "sqlite"
	// BackendFile selects a TOML file.
	BackendFile = "file"
	// BackendMemory keeps state in memory only.
	BackendMemory = "memory"

	sessionDBFileName   = "session.db"
	sessionTOMLFileName = "session.toml"
)

var _ KV = (*sqlite.Store)(nil)
var _ KV = (*FileStorage)(nil)
var _ KV = (*Memory)(nil)

// NewFromConfig creates the store selected by storage_backend.
func NewFromConfig() (KV, error) {
	return NewForBackend(config.Get("storage_backend", BackendSQLite))
}

// NewForBackend creates a store for the provided backend name. A SQLite
// store that cannot be opened falls back to the file backend.
func NewForBackend(backend string) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile:
		return newFile()
	case "", BackendSQLite:
		dir, err := StateDir()
		if err != nil {
			return nil, err
		}
		store, err := sqlite.Open(filepath.Join(dir, sessionDBFileName))
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to file: %v", err))
			return newFile()
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func newFile() (KV, error) {
	dir, err := StateDir()
	if err != nil {
		return nil, err
	}
	return NewFileStorage(filepath.Join(dir, sessionTOMLFileName))
}
