package constants

// Storage keys. Each key holds one JSON-encoded snapshot that is rewritten whole on
// every mutation.
const (
	KeyLog       = "LOG"
	KeyCompleted = "COMPLETED"
	KeyWeight    = "WEIGHT"
	KeySettings  = "SETTINGS"
)
