package system

import (
	"fmt"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/storage"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		fmt.Fprintln(ctx.Stdout(), "JSON stores have no schema. Nothing to migrate.")
		return nil
	}
	defer ctx.Store.Close()

	count, err := m.Migrate(func(msg string) {
		fmt.Fprintln(ctx.Stdout(), msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Fprintln(ctx.Stdout(), "No migrations to apply. Database is up to date.")
	} else {
		fmt.Fprintf(ctx.Stdout(), "\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
