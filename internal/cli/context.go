package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/julianstephens/eatforce/internal/app"
	"github.com/julianstephens/eatforce/internal/backup"
	"github.com/julianstephens/eatforce/internal/clock"
	"github.com/julianstephens/eatforce/internal/config"
	"github.com/julianstephens/eatforce/internal/logger"
	"github.com/julianstephens/eatforce/internal/models"
	"github.com/julianstephens/eatforce/internal/storage"
	"github.com/julianstephens/eatforce/internal/utils"
)

// Notifier delivers reminders to the desktop and asks for permission to do so.
type Notifier interface {
	Deliver(n models.Notification) error
	RequestPermission(ctx context.Context) (bool, error)
}

// Context is passed to every command's Run method.
type Context struct {
	Config   config.Config
	Store    storage.Provider
	Clock    clock.Clock
	Notifier Notifier
	Out      io.Writer

	app *app.App
}

// Stdout is where commands print their results.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}

// App builds the session on first use. The store must already be loaded.
func (c *Context) App() (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	opts := app.Options{Store: c.Store, Clock: c.Clock}
	if c.Notifier != nil {
		opts.Sink = c.Notifier
		opts.Permission = c.Notifier
	}

	a, err := app.New(opts)
	if err != nil {
		return nil, err
	}
	c.app = a
	return a, nil
}

// BackupManager returns a manager for file-backed stores, or false for PostgreSQL.
func (c *Context) BackupManager() (*backup.Manager, bool) {
	switch c.Store.(type) {
	case *storage.SQLiteStore, *storage.JSONStore:
		return backup.NewManager(c.Store.GetConfigPath()), true
	default:
		return nil, false
	}
}

// PerformAutomaticBackup creates a backup and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	mgr, ok := c.BackupManager()
	if !ok {
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveDate turns "", "today" or YYYY-MM-DD into a date in the local zone.
func (c *Context) ResolveDate(s string) (time.Time, error) {
	now := c.Now()
	if s == "today" {
		s = ""
	}
	key, err := utils.ResolveDate(s, now)
	if err != nil {
		return time.Time{}, err
	}
	return utils.ParseDateInLocation(key, now.Location())
}
