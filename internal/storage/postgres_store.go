package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/logger"
	"github.com/julianstephens/eatforce/internal/migration"
	"github.com/julianstephens/eatforce/migrations"
)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	s := &PostgresStore{
		connStr: connStr,
	}
	s.ensureSearchPath()
	return s
}

func (s *PostgresStore) ensureSearchPath() {
	if isPostgresURL(s.connStr) {
		u, err := url.Parse(s.connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
			s.connStr = u.String()
		}
		return
	}
	if !hasDSNParam(s.connStr, "search_path") {
		s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
	}
}

func isPostgresURL(connStr string) bool {
	return strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://")
}

// hasDSNParam reports whether a key=value style connection string sets key (case-insensitive).
func hasDSNParam(connStr, key string) bool {
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], key) {
			return true
		}
	}
	return false
}

func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}
	return hasDSNParam(connStr, "sslmode")
}

// ValidateConnString checks that connStr is a PostgreSQL URI or DSN without a password.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if HasEmbeddedCredentials(connStr) {
		return ErrEmbeddedCredentials
	}

	if isPostgresURL(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}
		if u.Host == "" && u.User == nil && (u.Path == "" || u.Path == "/") {
			return fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
	}

	return nil
}

// HasEmbeddedCredentials reports whether connStr carries a password, either as URL
// userinfo or as a password= DSN pair.
func HasEmbeddedCredentials(connStr string) bool {
	if isPostgresURL(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if _, set := u.User.Password(); set {
			return true
		}
		return u.Query().Get("password") != ""
	}
	return hasDSNParam(connStr, "password")
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if _, err := s.Migrate(logMigration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	return s.runner().ValidateVersion()
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *PostgresStore) Get(key string) ([]byte, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *PostgresStore) Set(key string, value []byte) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Migrate creates the application schema if needed and applies pending embedded migrations.
func (s *PostgresStore) Migrate(logFn func(string)) (int, error) {
	if err := s.open(); err != nil {
		return 0, err
	}
	if _, err := s.db.Exec("CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(constants.AppName)); err != nil {
		return 0, fmt.Errorf("failed to create schema: %w", err)
	}
	return s.runner().ApplyMigrations(logFn)
}

// SchemaVersion reports the applied and the newest embedded schema versions.
func (s *PostgresStore) SchemaVersion() (int, int, error) {
	if s.db == nil {
		return 0, 0, fmt.Errorf("storage not loaded")
	}
	r := s.runner()
	current, err := r.GetCurrentVersion()
	if err != nil {
		return 0, 0, err
	}
	latest, err := r.GetLatestVersion()
	if err != nil {
		return 0, 0, err
	}
	return current, latest, nil
}

func (s *PostgresStore) runner() *migration.Runner {
	sub, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		panic(err)
	}
	return migration.NewRunner(s.db, sub, migration.DriverPostgres)
}

// GetConfigPath returns a non-sensitive identifier instead of the connection string.
func (s *PostgresStore) GetConfigPath() string {
	return "postgresql"
}
