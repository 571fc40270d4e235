package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/eatforce/internal/ledger"
	"github.com/julianstephens/eatforce/internal/plan"
	"github.com/julianstephens/eatforce/internal/utils"
)

// Summary bundles the figures shown on the dashboard for one day.
type Summary struct {
	Date        string
	Done        int
	Total       int
	Trend       string
	HasTrend    bool
	Streak      int
	Weight      float64
	WeightSet   bool
	LoggedMeals int // meals count captured with the workout log, 0 if none
}

// Percent returns the completion ratio as a whole percentage.
func (s Summary) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Done * 100 / s.Total
}

// WeightTrend compares the two most recent entries. Positive differences carry an
// explicit "+"; the result is false when fewer than two entries exist.
func WeightTrend(weights map[string]float64) (string, bool) {
	if len(weights) < 2 {
		return "", false
	}

	dates := make([]string, 0, len(weights))
	for d := range weights {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	diff := weights[dates[0]] - weights[dates[1]]
	if diff > 0 {
		return fmt.Sprintf("+%.1f", diff), true
	}
	return fmt.Sprintf("%.1f", diff), true
}

// WeightStreak counts consecutive logged days ending today.
func WeightStreak(weights map[string]float64, today time.Time) int {
	streak := 0
	day := utils.DateOnly(today)
	for {
		if _, ok := weights[utils.FormatDate(day)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// CompletionRatio returns how many of the catalog's slots are done on today.
func CompletionRatio(l *ledger.Ledger, c *plan.Catalog, today string) (done, total int) {
	return l.CountDoneForDay(today), c.Len()
}

// Summarize collects every dashboard figure for today.
func Summarize(l *ledger.Ledger, c *plan.Catalog, today time.Time) Summary {
	date := utils.FormatDate(today)
	weights := l.Weights()

	s := Summary{Date: date, Streak: WeightStreak(weights, today)}
	s.Done, s.Total = CompletionRatio(l, c, date)
	s.Trend, s.HasTrend = WeightTrend(weights)
	s.Weight, s.WeightSet = weights[date]
	if entry, ok := l.DailyLog(date); ok {
		s.LoggedMeals = entry.MealsCompleted
	}
	return s
}
