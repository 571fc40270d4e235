package models

import (
	"time"

	"github.com/julianstephens/eatforce/internal/constants"
)

// Notification is a reminder emitted by the reminder engine.
type Notification struct {
	ID    string                     `json:"id"`
	Kind  constants.NotificationKind `json:"kind"`
	Title string                     `json:"title"`
	Body  string                     `json:"body"`
	At    time.Time                  `json:"at"`
}

// Text joins title and body into the single line used by plain-text sinks.
func (n Notification) Text() string {
	if n.Body == "" {
		return n.Title
	}
	return n.Title + ": " + n.Body
}
