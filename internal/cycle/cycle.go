package cycle

import (
	"time"

	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/models"
	"github.com/julianstephens/eatforce/internal/utils"
)

var epoch = mustParseEpoch()

func mustParseEpoch() time.Time {
	t, err := time.Parse(constants.DateFormat, constants.EpochDate)
	if err != nil {
		panic(err)
	}
	return t
}

// Epoch returns the calendar date the rotation is anchored to.
func Epoch() time.Time {
	return epoch
}

// Day bundles everything the rotation decides for one date.
type Day struct {
	Date        string
	Index       int
	Supplements models.SupplementSchedule
	Lunch       string
	Workout     string
}

// Index returns the position of date within the repeating cycle, in [0, CycleLength).
// Only the wall-clock date of the argument matters; the time of day and the
// location's daylight-saving offset do not.
func Index(date time.Time) int {
	return wrap(utils.DaysBetween(epoch, date))
}

// Supplements applies the fixed weekly predicates to a cycle index. Iron is the only
// supplement keyed to the full fortnight rather than the week.
func Supplements(index int) models.SupplementSchedule {
	index = wrap(index)
	week := index % 7
	return models.SupplementSchedule{
		Zinc:     week == 0 || week == 3,
		VitaminD: week == 0 || week == 2 || week == 5,
		VitaminC: week == 1 || week == 4 || week == 6,
		Iron:     index == 0 || index == 10,
	}
}

// Lunch returns the lunch suggestion for a cycle index.
func Lunch(index int) string {
	return lunches[wrap(index)]
}

// Workout returns the workout suggestion for a cycle index.
func Workout(index int) string {
	return workouts[wrap(index)]
}

// ForDate resolves the full rotation for a date.
func ForDate(date time.Time) Day {
	idx := Index(date)
	return Day{
		Date:        utils.FormatDate(date),
		Index:       idx,
		Supplements: Supplements(idx),
		Lunch:       Lunch(idx),
		Workout:     Workout(idx),
	}
}

// wrap is a non-negative modulo so dates before the epoch still land in range.
func wrap(n int) int {
	n %= constants.CycleLength
	if n < 0 {
		n += constants.CycleLength
	}
	return n
}
