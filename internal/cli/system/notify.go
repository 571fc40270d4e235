package system

import (
	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/logger"
	"github.com/julianstephens/eatforce/internal/notifier"
)

// NotifyCmd evaluates the current minute once. It is meant to be run from cron.
type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if c.DryRun {
		ctx.Notifier = nil
	}
	a, err := ctx.App()
	if err != nil {
		return err
	}

	emitted := a.Tick(ctx.Now())
	logger.Debug("notify evaluated", "emitted", len(emitted), "delivering", a.NotificationsEnabled())

	if c.DryRun {
		printer := notifier.NewWriter(ctx.Stdout())
		for _, n := range emitted {
			if err := printer.Deliver(n); err != nil {
				return err
			}
		}
	}
	return nil
}
