package settings

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/models"
	"github.com/julianstephens/eatforce/internal/storage"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	var out bytes.Buffer
	return &cli.Context{Store: store, Out: &out}, &out
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestSettingsCmd_List(t *testing.T) {
	ctx, out := setupTestDB(t)
	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Fatalf("settings list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Slot Tolerance:        0 min") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	tests := []struct {
		name    string
		cmd     SettingsCmd
		want    models.Settings
		wantErr bool
	}{
		{
			name: "tolerance",
			cmd:  SettingsCmd{SlotToleranceMin: intPtr(5)},
			want: models.Settings{SlotToleranceMin: 5, HydrationEnabled: true, MovementEnabled: true},
		},
		{
			name: "disable both interval reminders",
			cmd:  SettingsCmd{Hydration: boolPtr(false), Movement: boolPtr(false)},
			want: models.Settings{},
		},
		{
			name:    "tolerance out of range",
			cmd:     SettingsCmd{SlotToleranceMin: intPtr(16)},
			want:    models.DefaultSettings(),
			wantErr: true,
		},
		{
			name: "no flags",
			cmd:  SettingsCmd{},
			want: models.DefaultSettings(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestDB(t)
			err := tt.cmd.Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}

			got, err := storage.LoadSettings(ctx.Store)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
