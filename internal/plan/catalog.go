package plan

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/models"
	"github.com/julianstephens/eatforce/internal/utils"
)

// ErrUnordered is returned when slot times are not strictly increasing.
var ErrUnordered = errors.New("slot times must be strictly increasing")

// Catalog is the ordered list of slot templates that make up every day.
type Catalog struct {
	slots   []models.Slot
	minutes []int
	index   map[string]int
}

// New validates slots and builds a catalog. Every slot time must parse as HH:MM and the
// times must be strictly increasing.
func New(slots []models.Slot) (*Catalog, error) {
	c := &Catalog{
		slots:   make([]models.Slot, len(slots)),
		minutes: make([]int, len(slots)),
		index:   make(map[string]int, len(slots)),
	}
	copy(c.slots, slots)

	for i, slot := range slots {
		m, err := utils.ParseTimeToMinutes(slot.Time)
		if err != nil {
			return nil, fmt.Errorf("slot %d (%q): invalid time: %w", i, slot.Title, err)
		}
		if i > 0 && m <= c.minutes[i-1] {
			return nil, fmt.Errorf("slot %d at %s follows %s: %w", i, slot.Time, slots[i-1].Time, ErrUnordered)
		}
		c.minutes[i] = m
		c.index[slot.Time] = i
	}

	return c, nil
}

// Slots returns a copy of the slot templates in time order.
func (c *Catalog) Slots() []models.Slot {
	out := make([]models.Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

// Len returns the number of slots in a day.
func (c *Catalog) Len() int {
	return len(c.slots)
}

// Minutes returns the minute-of-day for the slot at position i.
func (c *Catalog) Minutes(i int) int {
	return c.minutes[i]
}

// Find looks up a slot by its HH:MM time.
func (c *Catalog) Find(timeOfDay string) (models.Slot, bool) {
	i, ok := c.index[timeOfDay]
	if !ok {
		return models.Slot{}, false
	}
	return c.slots[i], true
}

// Nearest returns the position of the slot closest to now, provided it lies within window.
// Ties go to the earlier slot.
func (c *Catalog) Nearest(now time.Time, window time.Duration) (int, bool) {
	nowMin := utils.MinuteOfDay(now)
	limit := int(window / time.Minute)

	best, bestDiff := -1, 0
	for i, m := range c.minutes {
		diff := abs(nowMin - m)
		if diff > limit {
			continue
		}
		if best == -1 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best, best != -1
}

// Past reports whether the slot at position i has already started at now.
func (c *Catalog) Past(i int, now time.Time) bool {
	return utils.MinuteOfDay(now) > c.minutes[i]
}

// Resolve returns the supplements to take with slot under the given schedule.
func Resolve(slot models.Slot, schedule models.SupplementSchedule) []string {
	return slot.Supplements.Resolve(schedule)
}

// CompletionKey identifies one slot on one date, e.g. "08:00-2025-01-01".
func CompletionKey(timeOfDay, date string) string {
	return timeOfDay + "-" + date
}

// SplitCompletionKey reverses CompletionKey. The time part is always HH:MM.
func SplitCompletionKey(key string) (timeOfDay, date string, ok bool) {
	n := len(constants.TimeFormat)
	if len(key) < n+2 || key[n] != '-' {
		return "", "", false
	}
	return key[:n], key[n+1:], true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
