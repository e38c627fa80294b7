package storage

import "errors"

// ErrNotInitialized is returned by Load when the backing store has not been
// created with Init.
var ErrNotInitialized = errors.New("storage not initialized, run 'thrive init' first")

// Gateway is the raw key/value persistence surface. Values are opaque JSON
// documents addressed by the logical keys in the constants package.
type Gateway interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
}

// Provider is a Gateway with a lifecycle.
type Provider interface {
	Gateway

	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Utils
	GetConfigPath() string
}

// SchemaInfo is implemented by database-backed providers that track a
// migration version.
type SchemaInfo interface {
	SchemaVersion() (current, latest int, err error)
}

// Migrator is implemented by providers with versioned schemas.
type Migrator interface {
	SchemaInfo
	Migrate(logFn func(string)) (int, error)
}
