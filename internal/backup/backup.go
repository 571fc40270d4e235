package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/logger"
)

const stampFormat = "20060102-150405"

// now is replaced in tests to produce distinct timestamps.
var now = time.Now

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots a file-backed store (SQLite or JSON) into a sibling backups directory.
type Manager struct {
	storePath string
	backupDir string
	suffix    string
}

// NewManager returns a manager for the store at storePath. The backup format follows the
// store's extension.
func NewManager(storePath string) *Manager {
	suffix := filepath.Ext(storePath)
	if suffix == "" {
		suffix = ".db"
	}
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), constants.BackupDirName),
		suffix:    suffix,
	}
}

func (m *Manager) Dir() string {
	return m.backupDir
}

func (m *Manager) isJSON() bool {
	return strings.EqualFold(m.suffix, ".json")
}

// Create writes a new backup and prunes the oldest beyond the retention limit.
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}

	stamp := now().Format(stampFormat)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+m.suffix)
	for n := 1; fileExists(path); n++ {
		if n > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, n, m.suffix))
	}

	var err error
	if m.isJSON() {
		err = m.verify(m.storePath)
		if err == nil {
			err = copyFile(m.storePath, path)
		}
	} else {
		err = vacuumInto(m.storePath, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up store: %w", err)
	}

	logger.Info("backup created", "path", path)
	return path, nil
}

func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		db.Close()
		return copyFile(src, dst)
	}
	return nil
}

// List returns backups newest first. Files whose names do not carry a timestamp are ignored.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix)
		if len(stamp) > len(stampFormat) && stamp[len(stampFormat)] == '-' {
			stamp = stamp[:len(stampFormat)]
		}
		ts, err := time.ParseInLocation(stampFormat, stamp, time.Local)
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the store with backupPath. The current store is backed up first and
// that backup's path is returned (empty when there was no store to save).
func (m *Manager) Restore(backupPath string) (string, error) {
	if !fileExists(backupPath) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := m.verify(backupPath); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var saved string
	if fileExists(m.storePath) {
		var err error
		if saved, err = m.create(); err != nil {
			return "", fmt.Errorf("failed to back up current store before restore: %w", err)
		}
	}

	tmp := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tmp); err != nil {
		return saved, fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.storePath); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("failed to remove temporary file", "path", tmp, "error", rmErr)
		}
		return saved, fmt.Errorf("failed to restore store: %w", err)
	}

	logger.Info("store restored", "from", backupPath)
	return saved, nil
}

func (m *Manager) verify(path string) error {
	if m.isJSON() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !json.Valid(data) {
			return fmt.Errorf("%s is not valid JSON", filepath.Base(path))
		}
		return nil
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
