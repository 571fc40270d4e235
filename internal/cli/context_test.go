package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/eatforce/internal/clock"
	"github.com/julianstephens/eatforce/internal/storage"
)

func TestResolveDate(t *testing.T) {
	now := time.Date(2026, 10, 15, 21, 45, 0, 0, time.Local)
	ctx := &Context{Clock: &clock.Fixed{T: now}}

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: "2026-10-15"},
		{in: "today", want: "2026-10-15"},
		{in: "2026-01-31", want: "2026-01-31"},
		{in: "31/01/2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ctx.ResolveDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveDate(%q) error = %v", tt.in, err)
			}
			if !tt.wantErr && got.Format("2006-01-02") != tt.want {
				t.Errorf("ResolveDate(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestBackupManagerOnlyForFileStores(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name  string
		store storage.Provider
		want  bool
	}{
		{name: "sqlite", store: storage.NewSQLiteStore(filepath.Join(dir, "a.db")), want: true},
		{name: "json", store: storage.NewJSONStore(filepath.Join(dir, "a.json")), want: true},
		{name: "postgres", store: storage.NewPostgresStore("postgres://u@localhost/eatforce"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := &Context{Store: tt.store}
			if _, ok := ctx.BackupManager(); ok != tt.want {
				t.Errorf("BackupManager() ok = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestAppIsBuiltOnce(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "eatforce.json"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	ctx := &Context{Store: store, Out: &out}

	a, err := ctx.App()
	if err != nil {
		t.Fatalf("App() failed: %v", err)
	}
	b, err := ctx.App()
	if err != nil || a != b {
		t.Errorf("App() returned a different session")
	}
	if ctx.Stdout() != &out {
		t.Error("Stdout() ignored Out")
	}
}
