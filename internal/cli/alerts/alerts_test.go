package alerts

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/clock"
	"github.com/julianstephens/eatforce/internal/models"
	"github.com/julianstephens/eatforce/internal/storage"
)

type fakeNotifier struct {
	granted    bool
	requestErr error
	deliverErr error
	delivered  []models.Notification
}

func (f *fakeNotifier) Deliver(n models.Notification) error {
	if f.deliverErr != nil {
		return f.deliverErr
	}
	f.delivered = append(f.delivered, n)
	return nil
}

func (f *fakeNotifier) RequestPermission(ctx context.Context) (bool, error) {
	return f.granted, f.requestErr
}

func setupTestContext(t *testing.T, n cli.Notifier) (*cli.Context, *bytes.Buffer, storage.Provider) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "eatforce.json"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	return &cli.Context{
		Store:    store,
		Clock:    &clock.Fixed{T: time.Date(2026, 10, 15, 9, 0, 0, 0, time.Local)},
		Notifier: n,
		Out:      &out,
	}, &out, store
}

func TestEnableCmd(t *testing.T) {
	tests := []struct {
		name    string
		n       *fakeNotifier
		wantOn  bool
		wantOut string
	}{
		{name: "granted", n: &fakeNotifier{granted: true}, wantOn: true, wantOut: "ALERTS ACTIVE"},
		{name: "denied", n: &fakeNotifier{}, wantOut: "in-app log"},
		{name: "tray down", n: &fakeNotifier{requestErr: errors.New("connection refused")}, wantOut: "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out, store := setupTestContext(t, tt.n)
			if err := (&EnableCmd{}).Run(ctx); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			s, err := storage.LoadSettings(store)
			if err != nil {
				t.Fatal(err)
			}
			if s.NotificationsEnabled != tt.wantOn {
				t.Errorf("NotificationsEnabled = %v, want %v", s.NotificationsEnabled, tt.wantOn)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("unexpected output: %s", out.String())
			}
		})
	}
}

func TestDisableAndStatus(t *testing.T) {
	ctx, out, store := setupTestContext(t, &fakeNotifier{granted: true})
	if err := (&EnableCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&DisableCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	s, err := storage.LoadSettings(store)
	if err != nil {
		t.Fatal(err)
	}
	if s.NotificationsEnabled {
		t.Error("notifications still enabled after disable")
	}

	out.Reset()
	if err := (&StatusCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Delivery:        off", "Hydration:       on", "Slot tolerance:  0 min"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("status missing %q:\n%s", want, out.String())
		}
	}
}

func TestTestCmd(t *testing.T) {
	n := &fakeNotifier{}
	ctx, _, _ := setupTestContext(t, n)
	if err := (&TestCmd{}).Run(ctx); err != nil {
		t.Fatalf("test failed: %v", err)
	}
	if len(n.delivered) != 1 {
		t.Errorf("delivered %d notifications", len(n.delivered))
	}

	n.deliverErr = errors.New("tray gone")
	if err := (&TestCmd{}).Run(ctx); err == nil {
		t.Error("expected delivery error")
	}

	ctx.Notifier = nil
	if err := (&TestCmd{}).Run(ctx); err == nil {
		t.Error("expected error without notifier")
	}
}
