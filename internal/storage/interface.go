package storage

import "errors"

// ErrNotFound is returned by Get when no value is stored under a key.
var ErrNotFound = errors.New("key not found")

// Provider is a key/value store for whole JSON snapshots. Every Set replaces the
// previous value for that key.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Snapshots
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by stores backed by a versioned SQL schema.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (current, latest int, err error)
}
