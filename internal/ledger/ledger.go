package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/eatforce/internal/clock"
	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/logger"
	"github.com/julianstephens/eatforce/internal/models"
	"github.com/julianstephens/eatforce/internal/plan"
	"github.com/julianstephens/eatforce/internal/storage"
)

// Ledger holds the persisted per-day state: completed slots, workout logs and weights.
// Every mutation writes the affected snapshot back to the store before returning.
type Ledger struct {
	store storage.Provider
	clock clock.Clock

	completed map[string]bool
	log       map[string]models.DailyLogEntry
	weights   map[string]float64
}

// Load reads the three snapshots from store. Missing or unreadable snapshots start empty.
func Load(store storage.Provider, c clock.Clock) *Ledger {
	l := &Ledger{
		store:     store,
		clock:     c,
		completed: make(map[string]bool),
		log:       make(map[string]models.DailyLogEntry),
		weights:   make(map[string]float64),
	}

	var completed map[string]bool
	if load(store, constants.KeyCompleted, &completed) {
		for k, done := range completed {
			if done {
				l.completed[k] = true
			}
		}
	}

	var log map[string]models.DailyLogEntry
	if load(store, constants.KeyLog, &log) {
		for date, entry := range log {
			l.log[date] = entry
		}
	}

	var weights map[string]float64
	if load(store, constants.KeyWeight, &weights) {
		for date, kg := range weights {
			if validWeight(kg) {
				l.weights[date] = kg
			}
		}
	}

	return l
}

func load(store storage.Provider, key string, dst interface{}) bool {
	data, err := store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to read snapshot, starting empty", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		logger.Warn("Ignoring malformed snapshot", "key", key, "error", err)
		return false
	}
	return true
}

func (l *Ledger) flush(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := l.store.Set(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// MarkDone records the slot at timeOfDay as done on date. Marking twice is a no-op.
func (l *Ledger) MarkDone(timeOfDay, date string) error {
	key := plan.CompletionKey(timeOfDay, date)
	if l.completed[key] {
		return nil
	}
	l.completed[key] = true
	return l.flush(constants.KeyCompleted, l.completed)
}

// IsDone reports whether the slot at timeOfDay was completed on date.
func (l *Ledger) IsDone(timeOfDay, date string) bool {
	return l.completed[plan.CompletionKey(timeOfDay, date)]
}

// CountDoneForDay counts completed slots on date.
func (l *Ledger) CountDoneForDay(date string) int {
	n := 0
	for key := range l.completed {
		if _, d, ok := plan.SplitCompletionKey(key); ok && d == date {
			n++
		}
	}
	return n
}

// LogWorkout replaces the workout record for date. An empty text is saved as "Not logged".
func (l *Ledger) LogWorkout(date, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		text = constants.WorkoutNotLogged
	}

	l.log[date] = models.DailyLogEntry{
		WorkoutDone:    text,
		LoggedAt:       l.clock.Now().Format(time.RFC3339),
		MealsCompleted: l.CountDoneForDay(date),
	}
	return l.flush(constants.KeyLog, l.log)
}

// DailyLog returns the workout record for date.
func (l *Ledger) DailyLog(date string) (models.DailyLogEntry, bool) {
	entry, ok := l.log[date]
	return entry, ok
}

// LogWeight stores kg for date. A date can be logged once; invalid or repeated entries
// leave the ledger unchanged and report false.
func (l *Ledger) LogWeight(date string, kg float64) (bool, error) {
	if !validWeight(kg) {
		return false, nil
	}
	if _, exists := l.weights[date]; exists {
		return false, nil
	}

	l.weights[date] = kg
	if err := l.flush(constants.KeyWeight, l.weights); err != nil {
		return true, err
	}
	return true, nil
}

// Weight returns the weight logged on date.
func (l *Ledger) Weight(date string) (float64, bool) {
	kg, ok := l.weights[date]
	return kg, ok
}

// Weights returns a copy of the weight history keyed by ISO date.
func (l *Ledger) Weights() map[string]float64 {
	out := make(map[string]float64, len(l.weights))
	for d, kg := range l.weights {
		out[d] = kg
	}
	return out
}

// ParseWeight parses user input such as "72.4" into kilograms.
func ParseWeight(s string) (float64, bool) {
	kg, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !validWeight(kg) {
		return 0, false
	}
	return kg, true
}

func validWeight(kg float64) bool {
	return !math.IsNaN(kg) && !math.IsInf(kg, 0) && kg > 0
}
