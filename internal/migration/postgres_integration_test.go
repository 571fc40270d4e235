package migration

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// Set EATFORCE_TEST_POSTGRES to a connection string to run against a live server.
func openPostgresTestDB(t *testing.T) *sql.DB {
	t.Helper()
	connStr := os.Getenv("EATFORCE_TEST_POSTGRES")
	if connStr == "" {
		t.Skip("EATFORCE_TEST_POSTGRES not set, skipping PostgreSQL integration test")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("failed to open postgres database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("failed to ping postgres database: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DROP TABLE IF EXISTS schema_version")
		db.Exec("DROP TABLE IF EXISTS migration_probe")
		db.Close()
	})
	return db
}

func TestPostgresApplyMigrations(t *testing.T) {
	db := openPostgresTestDB(t)
	runner := NewRunner(db, memFS(map[string]string{
		"001_init.sql": "CREATE TABLE migration_probe (id SERIAL PRIMARY KEY);",
	}), DriverPostgres)

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if count != 1 {
		t.Errorf("applied %d migrations, want 1", count)
	}

	if err := runner.SetVersion(1); err != nil {
		t.Fatalf("SetVersion with $1 placeholder failed: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() = %v", err)
	}
}
