package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/logger"
	"github.com/julianstephens/eatforce/internal/models"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// ErrTrayUnavailable is returned when the tray app is not running or cannot be verified.
var ErrTrayUnavailable = errors.New("eatforce-tray is not running")

// Notifier posts notifications to the desktop tray app over its local webhook.
type Notifier struct {
	client *http.Client
}

type WebhookPayload struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func New() *Notifier {
	return &Notifier{
		client: &http.Client{Timeout: constants.NotifyRequestTimeout},
	}
}

// Deliver sends n to the tray app.
func (n *Notifier) Deliver(note models.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), constants.NotifyRequestTimeout)
	defer cancel()
	return n.Notify(ctx, note.Title, note.Body)
}

// Notify sends a single notification to the tray app.
func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	port, secret, err := locateTray()
	if err != nil {
		return err
	}

	return n.send(ctx, port, secret, WebhookPayload{
		Title:      title,
		Text:       body,
		DurationMs: constants.NotificationDurationMs,
	})
}

// RequestPermission checks that the tray app is running and accepts a confirmation
// notification. Any failure means notifications stay in log-only mode.
func (n *Notifier) RequestPermission(ctx context.Context) (bool, error) {
	if err := n.Notify(ctx, "🔔 ALERTS ACTIVE", "Reminders will show up here."); err != nil {
		logger.Info("Notification permission not granted", "error", err)
		return false, err
	}
	return true, nil
}

// Available reports whether a verified tray process is running, without sending anything.
func Available() bool {
	_, _, err := locateTray()
	return err == nil
}

func locateTray() (string, string, error) {
	dir, err := GetTrayAppConfigDir()
	if err != nil {
		return "", "", err
	}
	return findAndValidateTrayProcess(filepath.Join(dir, constants.NotifierLockfileName))
}

// GetTrayAppConfigDir returns the directory holding the tray app's lockfile.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	// settings.json may point the lockfile somewhere else
	data, err := os.ReadFile(filepath.Join(trayConfigDir, "settings.json"))
	if err == nil {
		var store struct {
			Settings struct {
				LockfileDir *string `json:"lockfile_dir"`
			} `json:"settings"`
		}
		if err := json.Unmarshal(data, &store); err == nil {
			if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
				return *store.Settings.LockfileDir, nil
			}
		}
	}

	return trayConfigDir, nil
}

// findAndValidateTrayProcess parses a "port|pid|secret" lockfile and checks the pid
// belongs to the tray executable.
func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", ErrTrayUnavailable
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := strings.TrimSpace(parts[0])
	if port == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", ErrTrayUnavailable
	}

	if !strings.HasPrefix(process.Executable(), constants.TrayExecutablePrefix) {
		return "", "", fmt.Errorf("%w: process with PID %d is %s", ErrTrayUnavailable, pid, process.Executable())
	}

	return port, secret, nil
}

func (n *Notifier) send(ctx context.Context, port, secret string, payload WebhookPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Eatforce-Secret", secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
