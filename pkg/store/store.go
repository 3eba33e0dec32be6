// Package store holds the persisted key-value stores a prefixed logger reads
// its level from.
package store

import (
	"errors"
	"fmt"
	"sync"
)

// LevelKey is the key the refresh timer reads the persisted level from.
const LevelKey = "debug"

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("store: not found")

// Getter reads values by key.
type Getter interface {
	Get(key string) (string, error)
}

// Store is a Getter that can also be written and closed.
type Store interface {
	Getter
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory  = "memory"
	BackendLevelDB = "leveldb"
	BackendFile    = "file"
	BackendEnv     = "env"
)

// Open returns the store for backend. path is the database or directory for
// the leveldb and file backends; an empty leveldb path keeps data in memory.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendLevelDB:
		if path == "" {
			return NewInMemoryLevelDB()
		}
		return NewLevelDB(path)
	case BackendFile:
		return NewFile(nil, path)
	case BackendEnv:
		return NewEnv(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}

var (
	globalMu sync.RWMutex
	global   Store = NewMemory()
)

// Global returns the process-wide store used when a logger is given none.
func Global() Store {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// SetGlobal replaces the process-wide store and returns the previous one.
func SetGlobal(s Store) Store {
	globalMu.Lock()
	defer globalMu.Unlock()

	prev := global
	global = s
	return prev
}
