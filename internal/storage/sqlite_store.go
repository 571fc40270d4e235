package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/eatforce/internal/logger"
	"github.com/julianstephens/eatforce/internal/migration"
	"github.com/julianstephens/eatforce/migrations"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if s.db == nil {
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}

	if _, err := s.Migrate(logMigration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'eatforce init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.runner().ValidateVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) Get(key string) ([]byte, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQLiteStore) Set(key string, value []byte) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
		key, string(value), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Migrate applies any pending embedded migrations.
func (s *SQLiteStore) Migrate(logFn func(string)) (int, error) {
	if s.db == nil {
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return 0, fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}
	return s.runner().ApplyMigrations(logFn)
}

// SchemaVersion reports the applied and the newest embedded schema versions.
func (s *SQLiteStore) SchemaVersion() (int, int, error) {
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

func (s *SQLiteStore) runner() *migration.Runner {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		// embedded directory is fixed at build time
		panic(err)
	}
	return migration.NewRunner(s.db, sub, migration.DriverSQLite)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, or nil before Init/Load.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func logMigration(msg string) {
	logger.Info(msg)
}
