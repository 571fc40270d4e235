package routine

import (
	"fmt"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/utils"
)

type DoneCmd struct {
	Time string `arg:"" optional:"" help:"Slot time (HH:MM). Defaults to the slot closest to now."`
	Date string `help:"Date of the slot (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	if c.Time == "" {
		slot, err := a.MarkCurrent()
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.Stdout(), "✓ %s %s executed\n", slot.Time, slot.Title)
		return nil
	}

	if !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time %q (expected HH:MM)", c.Time)
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	key := utils.FormatDate(date)
	slot, err := a.MarkDone(c.Time, key)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout(), "✓ %s %s done for %s\n", slot.Time, slot.Title, key)
	return nil
}
