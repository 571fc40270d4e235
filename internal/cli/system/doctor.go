package system

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/notifier"
	"github.com/julianstephens/eatforce/internal/plan"
	"github.com/julianstephens/eatforce/internal/storage"
)

// trayAvailable is replaced in tests.
var trayAvailable = notifier.Available

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	w := ctx.Stdout()
	fmt.Fprintln(w, "Running diagnostics...")
	fmt.Fprintln(w)

	hasError := false
	fail := func(name string, err error) {
		fmt.Fprintf(w, "❌ %s: FAIL\n", name)
		fmt.Fprintf(w, "   Error: %v\n", err)
		hasError = true
	}
	warn := func(name string, err error) {
		fmt.Fprintf(w, "⚠ %s: WARNING\n", name)
		fmt.Fprintf(w, "   %v\n", err)
	}
	ok := func(name string) {
		fmt.Fprintf(w, "✓ %s: OK\n", name)
	}

	reachable := true
	if err := ctx.Store.Load(); err != nil {
		fail("Store reachable", err)
		reachable = false
	} else {
		ok("Store reachable")
	}

	if reachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fail("Schema version", err)
		} else {
			ok("Schema version")
		}

		if err := checkSnapshots(ctx); err != nil {
			fail("Snapshots", err)
		} else {
			ok("Snapshots")
		}

		if err := checkCompletionKeys(ctx); err != nil {
			warn("Completion keys", err)
		} else {
			ok("Completion keys")
		}
	} else {
		fmt.Fprintln(w, "⊘ Schema and snapshot checks: SKIPPED (store not reachable)")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		warn("Backups present", err)
	} else {
		ok("Backups present")
	}

	if err := checkClockTimezone(ctx); err != nil {
		fail("Clock/timezone", err)
	} else {
		ok("Clock/timezone")
	}

	if trayAvailable() {
		ok("Tray notifier")
	} else {
		warn("Tray notifier", errors.New("eatforce-tray is not running; reminders stay in the in-app log"))
	}

	fmt.Fprintln(w)
	if hasError {
		fmt.Fprintln(w, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Fprintln(w, "All diagnostics passed!")
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return nil
	}
	current, latest, err := m.SchemaVersion()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

// checkSnapshots verifies that every stored snapshot is valid JSON.
func checkSnapshots(ctx *cli.Context) error {
	for _, key := range snapshotKeys {
		data, err := ctx.Store.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if !json.Valid(data) {
			return fmt.Errorf("%s is not valid JSON and will load as empty", key)
		}
	}
	return nil
}

// checkCompletionKeys reports completions whose slot time is not in the plan.
func checkCompletionKeys(ctx *cli.Context) error {
	data, err := ctx.Store.Get(constants.KeyCompleted)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var completed map[string]bool
	if err := json.Unmarshal(data, &completed); err != nil {
		return nil
	}

	catalog := plan.Default()
	unknown := 0
	for key := range completed {
		tm, _, ok := plan.SplitCompletionKey(key)
		if !ok {
			unknown++
			continue
		}
		if _, found := catalog.Find(tm); !found {
			unknown++
		}
	}
	if unknown > 0 {
		return fmt.Errorf("%d completion(s) refer to slots that are not in the plan", unknown)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, ok := ctx.BackupManager()
	if !ok {
		return errors.New("PostgreSQL stores are not backed up by eatforce; use pg_dump")
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return errors.New("no backups found - consider creating one with 'eatforce backup create'")
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if now.Location() == time.UTC {
		fmt.Fprintln(ctx.Stdout(), "   Note: timezone is UTC; reminders follow UTC wall-clock time")
	}
	return nil
}
