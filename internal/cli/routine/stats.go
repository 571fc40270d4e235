package routine

import (
	"fmt"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/constants"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	s := a.Stats()
	w := ctx.Stdout()
	fmt.Fprintf(w, "Date:      %s\n", s.Date)
	fmt.Fprintf(w, "Completed: %d/%d (%d%%)\n", s.Done, s.Total, s.Percent())

	weight := constants.MissingValuePlaceholder
	if s.WeightSet {
		weight = fmt.Sprintf("%.1f kg", s.Weight)
	}
	fmt.Fprintf(w, "Weight:    %s\n", weight)

	trend := constants.MissingValuePlaceholder
	if s.HasTrend {
		trend = s.Trend + " kg"
	}
	fmt.Fprintf(w, "Trend:     %s\n", trend)
	fmt.Fprintf(w, "Streak:    %d day(s)\n", s.Streak)
	if s.LoggedMeals > 0 {
		fmt.Fprintf(w, "Logged:    %d meals at workout log\n", s.LoggedMeals)
	}
	return nil
}
