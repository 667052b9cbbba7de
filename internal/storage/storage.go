// Package storage provides the opaque key/value store that commands persist into.
// Three backends are available: an in-memory map, a JSON file and a SQLite database.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"termfolio/internal/logger"
	"termfolio/pkg/consoletypes"
)

// ErrNotFound is returned by Require when a key is absent.
var ErrNotFound = errors.New("key not found")

// Driver names accepted by New.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Closer is implemented by stores that hold an open resource.
type Closer interface {
	Close() error
}

// New opens a store for the named driver. Path is ignored by the memory driver.
func New(driver, path string) (consoletypes.Store, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverFile:
		if path == "" {
			return nil, fmt.Errorf("file store requires a path")
		}
		return NewFileStore(path)
	case DriverSQLite:
		if path == "" {
			return nil, fmt.Errorf("sqlite store requires a path")
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// Require returns the value for key or an error wrapping ErrNotFound.
func Require(store consoletypes.Store, key string) (string, error) {
	value, ok, err := store.Get(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return value, nil
}

// Close releases the store's resources when it holds any.
func Close(store consoletypes.Store) {
	c, ok := store.(Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warn("Failed to close store", "error", err)
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key cannot be empty")
	}
	return nil
}
