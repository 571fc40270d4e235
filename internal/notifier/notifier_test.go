package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/models"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func stubConfigDir(t *testing.T, dir string) {
	t.Helper()
	orig := userConfigDirFunc
	userConfigDirFunc = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userConfigDirFunc = orig })
}

func stubProcess(t *testing.T, executable string) {
	t.Helper()
	orig := findProcessFunc
	findProcessFunc = func(pid int) (ps.Process, error) {
		if executable == "" {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: executable}, nil
	}
	t.Cleanup(func() { findProcessFunc = orig })
}

func TestGetTrayAppConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	stubConfigDir(t, tempDir)

	trayDir := filepath.Join(tempDir, constants.TrayAppIdentifier)
	dir, err := GetTrayAppConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != trayDir {
		t.Errorf("GetTrayAppConfigDir() = %s, want %s", dir, trayDir)
	}

	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatal(err)
	}
	customDir := "/custom/eatforce/dir"
	settings := fmt.Sprintf(`{"settings": {"lockfile_dir": %q}}`, customDir)
	if err := os.WriteFile(filepath.Join(trayDir, "settings.json"), []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}

	if dir, _ = GetTrayAppConfigDir(); dir != customDir {
		t.Errorf("GetTrayAppConfigDir() = %s, want %s", dir, customDir)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	tests := []struct {
		name       string
		lockfile   *string
		executable string
		wantErr    string
	}{
		{name: "missing lockfile", executable: "eatforce-tray", wantErr: "not running"},
		{name: "two-part lockfile", lockfile: ptr("8080|12345"), executable: "eatforce-tray", wantErr: "malformed"},
		{name: "garbage", lockfile: ptr("invalid"), executable: "eatforce-tray", wantErr: "malformed"},
		{name: "empty secret", lockfile: ptr("8080|12345|"), executable: "eatforce-tray", wantErr: "secret"},
		{name: "empty port", lockfile: ptr("|12345|s3cret"), executable: "eatforce-tray", wantErr: "port"},
		{name: "port out of range", lockfile: ptr("99999|12345|s3cret"), executable: "eatforce-tray", wantErr: "outside valid range"},
		{name: "bad pid", lockfile: ptr("8080|abc|s3cret"), executable: "eatforce-tray", wantErr: "process ID"},
		{name: "process gone", lockfile: ptr("8080|12345|s3cret"), executable: "", wantErr: "not running"},
		{name: "wrong executable", lockfile: ptr("8080|12345|s3cret"), executable: "other-app", wantErr: "other-app"},
		{name: "valid", lockfile: ptr("8080|12345|s3cret\n"), executable: "eatforce-tray-x86_64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubProcess(t, tt.executable)
			path := filepath.Join(t.TempDir(), constants.NotifierLockfileName)
			if tt.lockfile != nil {
				if err := os.WriteFile(path, []byte(*tt.lockfile), 0644); err != nil {
					t.Fatal(err)
				}
			}

			port, secret, err := findAndValidateTrayProcess(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if port != "8080" || secret != "s3cret" {
				t.Errorf("got port %q secret %q", port, secret)
			}
		})
	}
}

func ptr(s string) *string { return &s }

// fakeTray serves the webhook and writes a matching lockfile into a temp config dir.
func fakeTray(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	configDir := t.TempDir()
	stubConfigDir(t, configDir)
	stubProcess(t, "eatforce-tray")

	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayDir, 0700); err != nil {
		t.Fatal(err)
	}
	lock := fmt.Sprintf("%s|4242|test-secret", u.Port())
	if err := os.WriteFile(filepath.Join(trayDir, constants.NotifierLockfileName), []byte(lock), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestDeliver(t *testing.T) {
	var got WebhookPayload
	fakeTray(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("X-Eatforce-Secret") != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if got.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	n := New()
	if err := n.Deliver(models.Notification{Title: "💧 HYDRATE", Body: "500ml now."}); err != nil {
		t.Fatalf("Deliver failed: %v", err)
	}
	if got.Title != "💧 HYDRATE" || got.Text != "500ml now." || got.DurationMs != constants.NotificationDurationMs {
		t.Errorf("payload = %+v", got)
	}

	err := n.Deliver(models.Notification{Title: "x", Body: "fail"})
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Errorf("Deliver() error = %v, want status 500", err)
	}

	if !Available() {
		t.Error("Available() = false with a running tray")
	}
}

func TestRequestPermission(t *testing.T) {
	fakeTray(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	granted, err := New().RequestPermission(context.Background())
	if err != nil || !granted {
		t.Errorf("RequestPermission() = %v, %v; want true, nil", granted, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if granted, err := New().RequestPermission(ctx); granted || err == nil {
		t.Errorf("RequestPermission(cancelled) = %v, %v; want false, error", granted, err)
	}
}

func TestRequestPermissionWithoutTray(t *testing.T) {
	stubConfigDir(t, t.TempDir())

	granted, err := New().RequestPermission(context.Background())
	if granted || !errors.Is(err, ErrTrayUnavailable) {
		t.Errorf("RequestPermission() = %v, %v; want false, ErrTrayUnavailable", granted, err)
	}
	if Available() {
		t.Error("Available() = true without a tray")
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriter(&buf)

	err := sink.Deliver(models.Notification{
		Title: "🍽 LUNCH",
		Body:  "Main meal\n\n💊 Stack: Zinc",
		At:    time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := "[13:00] 🍽 LUNCH: Main meal | 💊 Stack: Zinc\n"; buf.String() != want {
		t.Errorf("Writer output = %q, want %q", buf.String(), want)
	}
}
