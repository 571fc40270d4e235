package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/config"
	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/storage"
)

var snapshotKeys = []string{
	constants.KeySettings,
	constants.KeyCompleted,
	constants.KeyLog,
	constants.KeyWeight,
}

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing store before initialization."`
	Source string `help:"Store path or connection string to copy existing data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	w := ctx.Stdout()

	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Initialized eatforce storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Fprintf(w, "Copying data from: %s\n", c.Source)
		n, err := copySnapshots(ctx.Store, c.Source)
		if err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		fmt.Fprintf(w, "Copied %d snapshot(s).\n", n)
	}

	if err := storage.EnsureSettings(ctx.Store); err != nil {
		return err
	}

	if ctx.Config.Path != "" {
		created, err := config.WriteDefault(ctx.Config.Path)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(w, "Wrote default config to: %s\n", ctx.Config.Path)
		}
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.BackupManager(); !ok {
		return errors.New("--force is only supported for file-backed stores")
	}

	path := ctx.Store.GetConfigPath()
	if c.Source != "" {
		absPath, err := filepath.Abs(path)
		if err == nil {
			path = absPath
		}
		if absSource, err := filepath.Abs(c.Source); err == nil && absSource == path {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing store: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete existing store: %w", err)
		}
		fmt.Fprintf(ctx.Stdout(), "Deleted existing store at: %s\n", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing store: %w", err)
	}
	return nil
}

func copySnapshots(dst storage.Provider, source string) (int, error) {
	src, err := storage.Open(source)
	if err != nil {
		return 0, err
	}
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("failed to load source store: %w", err)
	}
	defer src.Close()

	copied := 0
	for _, key := range snapshotKeys {
		data, err := src.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return copied, err
		}
		if err := dst.Set(key, data); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}
