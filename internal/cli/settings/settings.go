package settings

import (
	"fmt"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/constants"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	SlotToleranceMin *int  `help:"Minutes either side of a slot time that still trigger its reminder (0-15)."`
	Hydration        *bool `help:"Enable or disable the every-two-hours water reminder."`
	Movement         *bool `help:"Enable or disable the every-90-minutes movement reminder."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	settings := a.Settings()
	w := ctx.Stdout()

	if c.List {
		fmt.Fprintln(w, "Current Settings:")
		fmt.Fprintf(w, "  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Fprintf(w, "  Slot Tolerance:        %d min\n", settings.SlotToleranceMin)
		fmt.Fprintf(w, "  Hydration Reminder:    %v\n", settings.HydrationEnabled)
		fmt.Fprintf(w, "  Movement Reminder:     %v\n", settings.MovementEnabled)
		return nil
	}

	updated := false
	if c.SlotToleranceMin != nil {
		v := *c.SlotToleranceMin
		if v < 0 || v > constants.MaxSlotToleranceMin {
			return fmt.Errorf("slot tolerance must be between 0 and %d minutes", constants.MaxSlotToleranceMin)
		}
		settings.SlotToleranceMin = v
		updated = true
	}
	if c.Hydration != nil {
		settings.HydrationEnabled = *c.Hydration
		updated = true
	}
	if c.Movement != nil {
		settings.MovementEnabled = *c.Movement
		updated = true
	}

	if !updated {
		fmt.Fprintln(w, "No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := a.UpdateSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Fprintln(w, "Settings updated successfully.")
	return nil
}
