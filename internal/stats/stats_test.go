package stats

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/eatforce/internal/clock"
	"github.com/julianstephens/eatforce/internal/ledger"
	"github.com/julianstephens/eatforce/internal/plan"
	"github.com/julianstephens/eatforce/internal/storage"
)

func TestWeightTrend(t *testing.T) {
	tests := []struct {
		name    string
		weights map[string]float64
		want    string
		wantOK  bool
	}{
		{name: "empty", weights: nil},
		{name: "single", weights: map[string]float64{"2025-01-01": 80}},
		{name: "gain", weights: map[string]float64{"2025-01-01": 80, "2025-01-02": 81}, want: "+1.0", wantOK: true},
		{name: "loss", weights: map[string]float64{"2025-01-01": 81, "2025-01-02": 80}, want: "-1.0", wantOK: true},
		{name: "flat", weights: map[string]float64{"2025-01-01": 80, "2025-01-02": 80}, want: "0.0", wantOK: true},
		{
			name:    "uses two most recent dates",
			weights: map[string]float64{"2024-12-30": 90, "2025-01-05": 79.5, "2025-01-03": 80.25},
			want:    "-0.8",
			wantOK:  true,
		},
		{
			name:    "orders dates, not insertion",
			weights: map[string]float64{"2025-01-10": 82, "2025-01-09": 81.5, "2025-01-02": 70},
			want:    "+0.5",
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WeightTrend(tt.weights)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("WeightTrend() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWeightStreak(t *testing.T) {
	today := time.Date(2025, 1, 3, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		weights map[string]float64
		want    int
	}{
		{name: "none", weights: nil, want: 0},
		{name: "today missing", weights: map[string]float64{"2025-01-02": 80, "2025-01-01": 80}, want: 0},
		{name: "gap breaks streak", weights: map[string]float64{"2025-01-03": 80, "2025-01-02": 80, "2024-12-31": 80}, want: 2},
		{name: "three days", weights: map[string]float64{"2025-01-03": 80, "2025-01-02": 80, "2025-01-01": 80}, want: 3},
		{name: "future entries ignored", weights: map[string]float64{"2025-01-04": 80, "2025-01-03": 80}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeightStreak(tt.weights, today); got != tt.want {
				t.Errorf("WeightStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeightStreakAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	today := time.Date(2025, 3, 10, 0, 30, 0, 0, loc)
	weights := map[string]float64{"2025-03-10": 80, "2025-03-09": 80, "2025-03-08": 80}

	if got := WeightStreak(weights, today); got != 3 {
		t.Errorf("WeightStreak() across DST = %d, want 3", got)
	}
}

func TestSummarize(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "eatforce.json"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	now := time.Date(2025, 1, 2, 20, 0, 0, 0, time.UTC)
	l := ledger.Load(store, &clock.Fixed{T: now})
	catalog := plan.Default()

	for _, tm := range []string{"07:00", "08:00", "13:00"} {
		if err := l.MarkDone(tm, "2025-01-02"); err != nil {
			t.Fatal(err)
		}
	}
	if err := l.MarkDone("07:00", "2025-01-01"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.LogWeight("2025-01-01", 81); err != nil {
		t.Fatal(err)
	}
	if _, err := l.LogWeight("2025-01-02", 80); err != nil {
		t.Fatal(err)
	}
	if err := l.LogWorkout("2025-01-02", "Legs"); err != nil {
		t.Fatal(err)
	}

	done, total := CompletionRatio(l, catalog, "2025-01-02")
	if done != 3 || total != 10 {
		t.Errorf("CompletionRatio() = %d/%d, want 3/10", done, total)
	}

	s := Summarize(l, catalog, now)
	if s.Done != 3 || s.Total != 10 || s.Percent() != 30 {
		t.Errorf("Summarize() ratio = %d/%d (%d%%)", s.Done, s.Total, s.Percent())
	}
	if !s.HasTrend || s.Trend != "-1.0" {
		t.Errorf("Summarize() trend = %q, %v", s.Trend, s.HasTrend)
	}
	if s.Streak != 2 {
		t.Errorf("Summarize() streak = %d, want 2", s.Streak)
	}
	if !s.WeightSet || s.Weight != 80 {
		t.Errorf("Summarize() weight = %v, %v", s.Weight, s.WeightSet)
	}
	if s.LoggedMeals != 3 {
		t.Errorf("Summarize() logged meals = %d, want 3", s.LoggedMeals)
	}
}

func TestPercentEmptyCatalog(t *testing.T) {
	if got := (Summary{}).Percent(); got != 0 {
		t.Errorf("Percent() = %d, want 0", got)
	}
}
