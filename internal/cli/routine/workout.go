package routine

import (
	"fmt"
	"strings"

	"github.com/julianstephens/eatforce/internal/cli"
)

type WorkoutCmd struct {
	Text []string `arg:"" optional:"" help:"What you actually did."`
}

func (c *WorkoutCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	if err := a.LogWorkout(strings.Join(c.Text, " ")); err != nil {
		return err
	}

	entry := a.Today().Workout
	fmt.Fprintf(ctx.Stdout(), "✓ Locked in: %s (%d meals annihilated)\n", entry.WorkoutDone, entry.MealsCompleted)
	return nil
}
