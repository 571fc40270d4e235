package backups

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/logger"
)

var errUnsupported = errors.New("backups are only available for SQLite and JSON stores")

// stdin is replaced in tests to answer the restore prompt.
var stdin io.Reader = os.Stdin

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, ok := ctx.BackupManager()
	if !ok {
		return errUnsupported
	}

	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	fmt.Fprintf(ctx.Stdout(), "✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, ok := ctx.BackupManager()
	if !ok {
		return errUnsupported
	}

	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	w := ctx.Stdout()
	if len(backups) == 0 {
		fmt.Fprintln(w, "No backups found.")
		fmt.Fprintf(w, "Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	fmt.Fprintf(w, "Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		fmt.Fprintf(w, "  %s  %s  (%.1f KB)\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), float64(b.Size)/1024.0)
	}
	fmt.Fprintf(w, "\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, ok := ctx.BackupManager()
	if !ok {
		return errUnsupported
	}

	path := c.BackupFile
	if !filepath.IsAbs(path) {
		candidate := filepath.Join(mgr.Dir(), c.BackupFile)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", path)
	}

	w := ctx.Stdout()
	if !c.Yes {
		fmt.Fprintln(w, "⚠️  WARNING: This will replace your current data with the backup.")
		fmt.Fprintln(w, "A backup of your current data will be created before restoring.")
		fmt.Fprintf(w, "\nRestore from: %s\n", filepath.Base(path))
		fmt.Fprint(w, "Continue? [y/N]: ")

		response, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(w, "Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		logger.Warn("failed to close store before restore", "error", err)
	}

	saved, err := mgr.Restore(path)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	if saved != "" {
		fmt.Fprintf(w, "Saved current data as: %s\n", filepath.Base(saved))
	}
	fmt.Fprintln(w, "✓ Data restored successfully!")
	fmt.Fprintln(w, "Restart any running eatforce processes to use the restored data.")
	return nil
}
