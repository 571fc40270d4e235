package routine

import (
	"fmt"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/utils"
)

type ReportCmd struct {
	Out string `help:"Directory to write the PDF into. Defaults to report_dir from the config file, then the current directory." type:"path"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	dir := c.Out
	if dir == "" {
		dir = ctx.Config.ReportDir
	}
	if dir == "" {
		dir = "."
	}
	dir, err := utils.ExpandHome(dir)
	if err != nil {
		return err
	}

	a, err := ctx.App()
	if err != nil {
		return err
	}

	path, err := a.WriteReport(dir)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(ctx.Stdout(), "✓ Report saved: %s\n", path)
	return nil
}
