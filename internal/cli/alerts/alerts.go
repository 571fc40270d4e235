package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/eatforce/internal/app"
	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/logger"
	"github.com/julianstephens/eatforce/internal/models"
)

const permissionTimeout = 10 * time.Second

type AlertsCmd struct {
	Enable  EnableCmd  `cmd:"" help:"Ask the tray for permission and turn reminders on."`
	Disable DisableCmd `cmd:"" help:"Stop delivering reminders to the tray."`
	Status  StatusCmd  `cmd:"" help:"Show notification settings." default:"1"`
	Test    TestCmd    `cmd:"" help:"Send a test reminder."`
}

type EnableCmd struct{}

func (c *EnableCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), permissionTimeout)
	defer cancel()

	w := ctx.Stdout()
	granted, err := a.EnableNotifications(reqCtx)
	switch {
	case granted:
		fmt.Fprintln(w, "🔔 ALERTS ACTIVE")
	case errors.Is(err, app.ErrPermissionDenied):
		fmt.Fprintln(w, "Notifications were not allowed; reminders will stay in the in-app log.")
	default:
		logger.Warn("could not enable notifications", "error", err)
		fmt.Fprintf(w, "Could not enable notifications (%v); reminders will stay in the in-app log.\n", err)
	}
	return nil
}

type DisableCmd struct{}

func (c *DisableCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	if err := a.DisableNotifications(); err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout(), "🔕 Alerts disabled")
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	s := a.Settings()
	w := ctx.Stdout()
	fmt.Fprintf(w, "Delivery:        %s\n", onOff(s.NotificationsEnabled))
	fmt.Fprintf(w, "Hydration:       %s (every 2 hours)\n", onOff(s.HydrationEnabled))
	fmt.Fprintf(w, "Movement:        %s (every 90 minutes)\n", onOff(s.MovementEnabled))
	fmt.Fprintf(w, "Slot tolerance:  %d min\n", s.SlotToleranceMin)
	return nil
}

type TestCmd struct{}

func (c *TestCmd) Run(ctx *cli.Context) error {
	if ctx.Notifier == nil {
		return errors.New("no notifier configured")
	}

	n := models.Notification{
		Kind:  constants.NotificationSlot,
		Title: "🔔 EATFORCE TEST",
		Body:  "Reminders are reaching your desktop.",
		At:    ctx.Now(),
	}
	if err := ctx.Notifier.Deliver(n); err != nil {
		return fmt.Errorf("test notification failed: %w", err)
	}
	fmt.Fprintln(ctx.Stdout(), "✓ Test notification sent")
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
