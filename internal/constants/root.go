package constants

import "time"

const (
	AppName            = "eatforce"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/eatforce"
	DefaultConfigPath  = "~/.config/eatforce/eatforce.db"
	DefaultConfigFile  = "~/.config/eatforce/config.yaml"
	Version            = "v0.3.0"

	// DBConnectionEnv overrides the store location when set
	DBConnectionEnv = "EATFORCE_DB_CONNECTION"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "eatforce-"

	// Notify constants
	NotifierLockfileName   = "eatforce-notifier.lock"
	NotificationDurationMs = 8000
	TrayAppIdentifier      = "com.julianstephens.eatforce"
	TrayExecutablePrefix   = "eatforce-tray"
	NotifyRequestTimeout   = 3 * time.Second

	// Engine constants
	DefaultTickInterval     = time.Second
	NotificationLogSize     = 6
	CurrentSlotWindow       = 30 * time.Minute
	SupplementSeparator     = " • "
	WorkoutNotLogged        = "Not logged"
	MissingValuePlaceholder = "—"

	// Report constants
	ReportFilePrefix = "EATFORCE_"
	ReportFileSuffix = ".pdf"

	// Daily targets shown alongside the plan
	TargetWaterLiters = 3.5
	TargetSteps       = 10000
)
