package routine

import (
	"fmt"
	"io"
	"strings"

	"github.com/julianstephens/eatforce/internal/app"
	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/constants"
)

type TodayCmd struct {
	Date string `help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	a, err := ctx.App()
	if err != nil {
		return err
	}

	day := a.DayFor(date)
	w := ctx.Stdout()

	fmt.Fprintf(w, "EATFORCE · %s\n", date.Format("Monday, 02 January 2006"))
	fmt.Fprintf(w, "Cycle day %d/%d · %d/%d Annihilated\n\n", day.Cycle.Index+1, constants.CycleLength, day.Done, day.Total)

	fmt.Fprintf(w, "Targets: %.1fL water · %dK steps · %d slots\n\n", constants.TargetWaterLiters, constants.TargetSteps/1000, day.Total)

	fmt.Fprintln(w, "Supplement protocol:")
	for _, item := range app.Protocol(day.Cycle.Supplements) {
		mark := "○"
		if item.Active {
			mark = "●"
		}
		fmt.Fprintf(w, "  %s %-10s %s\n", mark, item.Name, item.With)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Today's mission:")
	fmt.Fprintf(w, "  Lunch:   %s\n", day.Cycle.Lunch)
	fmt.Fprintf(w, "  Workout: %s\n", day.Cycle.Workout)
	if day.Logged {
		fmt.Fprintf(w, "  Logged:  %s\n", day.Workout.WorkoutDone)
	}
	if day.HasWeight {
		fmt.Fprintf(w, "  Weight:  %.1f kg\n", day.Weight)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Schedule:")
	for _, s := range day.Slots {
		printSlot(w, s)
	}
	return nil
}

func printSlot(w io.Writer, s app.SlotView) {
	mark := "[ ]"
	switch s.Status {
	case app.StatusDone:
		mark = "[x]"
	case app.StatusPast:
		mark = "[-]"
	}
	pointer := " "
	if s.Current {
		pointer = ">"
	}

	fmt.Fprintf(w, "%s %s %s  %s · %s\n", pointer, mark, s.Time, s.Title, s.Subtitle)
	fmt.Fprintf(w, "          %s\n", s.Description)
	if len(s.Stack) > 0 {
		fmt.Fprintf(w, "          💊 Stack: %s\n", strings.Join(s.Stack, constants.SupplementSeparator))
	}
	if s.Note != "" {
		fmt.Fprintf(w, "          Note: %s\n", s.Note)
	}
	if s.Alternative != "" {
		fmt.Fprintf(w, "          Alt: %s\n", s.Alternative)
	}
}
