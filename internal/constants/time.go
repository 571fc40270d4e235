package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// ReportDateFormat is the long date shown on reports (15 October 2026)
	ReportDateFormat = "02 January 2006"

	// EpochDate anchors the rotating cycle. Day 0 of every cycle falls on a date whose
	// distance from the epoch is a multiple of CycleLength.
	EpochDate = "2025-01-01"

	// CycleLength is the number of days before lunches, workouts and supplements repeat
	CycleLength = 14
)
