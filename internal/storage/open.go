package storage

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/keyring"
	"github.com/julianstephens/eatforce/internal/utils"
)

// KeyringSpec selects the PostgreSQL connection string saved in the OS keyring.
const KeyringSpec = "keyring"

var (
	getKeyringConnString = keyring.GetConnectionString
	lookupEnv            = os.LookupEnv
)

// Open picks a Provider for spec without initializing or loading it.
//
// An empty spec uses $EATFORCE_DB_CONNECTION when set and the default SQLite path
// otherwise. "keyring" reads a connection string from the OS keyring. PostgreSQL URLs and
// DSNs given directly must not embed a password; a path ending in .json opens a JSONStore
// and any other path opens SQLite.
func Open(spec string) (Provider, error) {
	spec = strings.TrimSpace(spec)

	switch {
	case spec == "":
		if connStr, ok := lookupEnv(constants.DBConnectionEnv); ok && connStr != "" {
			return NewPostgresStore(connStr), nil
		}
		path, err := utils.ExpandHome(constants.DefaultConfigPath)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(path), nil

	case spec == KeyringSpec:
		connStr, err := getKeyringConnString()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return nil, fmt.Errorf("%w: run 'eatforce keyring set' first", err)
			}
			return nil, err
		}
		return NewPostgresStore(connStr), nil

	case IsPostgresSpec(spec):
		if HasEmbeddedCredentials(spec) {
			return nil, fmt.Errorf("%w: store it with 'eatforce keyring set' or export %s instead", ErrEmbeddedCredentials, constants.DBConnectionEnv)
		}
		if err := ValidateConnString(spec); err != nil {
			return nil, err
		}
		return NewPostgresStore(spec), nil
	}

	path, err := utils.ExpandHome(spec)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return NewJSONStore(path), nil
	}
	return NewSQLiteStore(path), nil
}

// IsPostgresSpec reports whether spec looks like a PostgreSQL URL or key=value DSN.
func IsPostgresSpec(spec string) bool {
	if isPostgresURL(spec) {
		return true
	}
	// key=value DSN such as "host=localhost dbname=eatforce"
	return strings.Contains(spec, "=") && (hasDSNParam(spec, "host") || hasDSNParam(spec, "dbname"))
}
