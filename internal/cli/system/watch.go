package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/logger"
	"github.com/julianstephens/eatforce/internal/models"
	"github.com/julianstephens/eatforce/internal/notifier"
)

type WatchCmd struct {
	Interval time.Duration `help:"How often to evaluate reminders. Defaults to tick_interval from the config file."`
	For      time.Duration `help:"Stop after this long. Zero runs until interrupted."`
	DryRun   bool          `help:"Print reminders instead of sending them to the tray."`
}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	if c.DryRun {
		ctx.Notifier = nil
	}
	a, err := ctx.App()
	if err != nil {
		return err
	}

	interval := c.Interval
	if interval <= 0 {
		interval = ctx.Config.TickInterval
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if c.For > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, c.For)
		defer cancel()
	}

	printer := notifier.NewWriter(ctx.Stdout())
	fmt.Fprintf(ctx.Stdout(), "Watching reminders every %s (Ctrl+C to stop)\n", intervalLabel(interval))
	logger.Info("watch started", "interval", interval, "dry_run", c.DryRun, "delivering", a.NotificationsEnabled())

	err = a.Run(runCtx, interval, func(n models.Notification) {
		if err := printer.Deliver(n); err != nil {
			logger.Warn("failed to print reminder", "error", err)
		}
	})
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	logger.Info("watch stopped")
	return nil
}

func intervalLabel(d time.Duration) string {
	if d <= 0 {
		return time.Second.String()
	}
	return d.String()
}
