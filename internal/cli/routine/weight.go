package routine

import (
	"fmt"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/ledger"
)

type WeightCmd struct {
	Kg string `arg:"" help:"Today's body weight in kg."`
}

func (c *WeightCmd) Run(ctx *cli.Context) error {
	kg, ok := ledger.ParseWeight(c.Kg)
	if !ok {
		return fmt.Errorf("invalid weight %q: enter a positive number of kg", c.Kg)
	}

	a, err := ctx.App()
	if err != nil {
		return err
	}

	saved, err := a.LogWeight(kg)
	if err != nil {
		return err
	}
	if !saved {
		fmt.Fprintln(ctx.Stdout(), "🔒 Weight already locked in for today.")
		return nil
	}

	s := a.Stats()
	fmt.Fprintf(ctx.Stdout(), "✓ Logged %.1f kg\n", kg)
	if s.HasTrend {
		fmt.Fprintf(ctx.Stdout(), "  Trend: %s kg · streak %d day(s)\n", s.Trend, s.Streak)
	}
	return nil
}
