package models

// DailyLogEntry is the workout record saved for one calendar day.
type DailyLogEntry struct {
	WorkoutDone    string `json:"workoutDone"`
	LoggedAt       string `json:"loggedAt"` // RFC3339 timestamp
	MealsCompleted int    `json:"mealsCompleted"`
}
