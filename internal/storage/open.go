package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/keyring"
	"github.com/julianstephens/thrive/internal/storage/postgres"
	"github.com/julianstephens/thrive/internal/storage/sqlite"
)

// Backend names the kind of store a config value selects.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendJSON     Backend = "json"
	BackendPostgres Backend = "postgres"
)

// ErrEmbeddedCredentials is returned when a command-line connection string
// carries a password.
var ErrEmbeddedCredentials = errors.New("PostgreSQL connection strings with embedded credentials are not allowed; use 'thrive keyring set', " + constants.ConnectionEnvVar + ", or .pgpass instead")

// BackendFor classifies a --config value without opening anything.
func BackendFor(config string) Backend {
	switch {
	case config == constants.KeyringConfigValue, postgres.IsConnString(config):
		return BackendPostgres
	case strings.EqualFold(filepath.Ext(config), ".json"):
		return BackendJSON
	default:
		return BackendSQLite
	}
}

// Open returns the Provider selected by a --config value. File paths may
// start with "~/".
func Open(config string) (Provider, error) {
	switch BackendFor(config) {
	case BackendPostgres:
		connStr, err := postgresConnString(config)
		if err != nil {
			return nil, err
		}
		return postgres.New(connStr), nil
	case BackendJSON:
		path, err := ExpandPath(config)
		if err != nil {
			return nil, err
		}
		return NewJSONStore(path), nil
	default:
		path, err := ExpandPath(config)
		if err != nil {
			return nil, err
		}
		return sqlite.NewStore(path), nil
	}
}

func postgresConnString(config string) (string, error) {
	if config == constants.KeyringConfigValue {
		return keyring.ResolveConnectionString()
	}
	if env := os.Getenv(constants.ConnectionEnvVar); env != "" {
		return env, nil
	}
	if postgres.HasEmbeddedCredentials(config) {
		return "", ErrEmbeddedCredentials
	}
	if _, err := postgres.ValidateConnString(config); err != nil {
		return "", err
	}
	return config, nil
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
