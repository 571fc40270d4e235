package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/cli/alerts"
	"github.com/julianstephens/eatforce/internal/cli/backups"
	"github.com/julianstephens/eatforce/internal/cli/routine"
	"github.com/julianstephens/eatforce/internal/cli/settings"
	"github.com/julianstephens/eatforce/internal/cli/system"
	"github.com/julianstephens/eatforce/internal/clock"
	"github.com/julianstephens/eatforce/internal/config"
	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/errors"
	"github.com/julianstephens/eatforce/internal/logger"
	"github.com/julianstephens/eatforce/internal/notifier"
	"github.com/julianstephens/eatforce/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"string" default:"${config_file}"`
	Store   string `help:"Store path, PostgreSQL connection string, or 'keyring'. Overrides the config file. Credentials must NOT be embedded in connection strings." type:"string"`
	Debug   bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize eatforce storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Today    routine.TodayCmd     `cmd:"" help:"Show the schedule for a day."`
	Done     routine.DoneCmd      `cmd:"" help:"Mark a slot as annihilated."`
	Weight   routine.WeightCmd    `cmd:"" help:"Lock in today's body weight."`
	Workout  routine.WorkoutCmd   `cmd:"" help:"Log today's workout."`
	Stats    routine.StatsCmd     `cmd:"" help:"Show progress, weight trend and streak."`
	Report   routine.ReportCmd    `cmd:"" help:"Export today's PDF report."`
	Watch    system.WatchCmd      `cmd:"" help:"Run the reminder engine in the foreground."`
	Notify   system.NotifyCmd     `cmd:"" hidden:"" help:"Fire due reminders once (used by schedulers)."`
	Alerts   alerts.AlertsCmd     `cmd:"" help:"Manage desktop reminders."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage reminder settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Report whether a connection string is stored." default:"1"`
	} `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Doctor   system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	DebugCmd system.DebugCmd  `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Fourteen-day nutrition and training routine tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_file": constants.DefaultConfigFile,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	cfg.Override(CLI.Store, CLI.Debug)

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.Dir()}); err != nil {
		errors.Fatal(err)
	}

	command := ctx.Command()
	appCtx := &cli.Context{
		Config:   cfg,
		Clock:    clock.Real{},
		Notifier: notifier.New(),
	}

	// Keyring commands manage the connection string, so they must work before a store
	// can be opened.
	if !strings.HasPrefix(command, "keyring") {
		store, err := storage.Open(cfg.Store)
		if err != nil {
			errors.Fatal(err)
		}
		appCtx.Store = store

		if needsLoadedStore(command) {
			if err := store.Load(); err != nil {
				errors.Fatal(err)
			}
		}
	}

	logger.Debug("running command", "command", command, "store", cfg.Store)
	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// needsLoadedStore is false for commands that create, migrate or diagnose the store
// themselves.
func needsLoadedStore(command string) bool {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "init", "migrate", "doctor":
		return false
	}
	return true
}
