package ledger

import (
	"encoding/json"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/eatforce/internal/clock"
	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/models"
	"github.com/julianstephens/eatforce/internal/storage"
)

// failingStore accepts reads from an embedded store and rejects every write.
type failingStore struct {
	storage.Provider
}

func (failingStore) Set(string, []byte) error { return errors.New("disk full") }

func newStore(t *testing.T) *storage.JSONStore {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "eatforce.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func testClock() *clock.Fixed {
	return &clock.Fixed{T: time.Date(2025, 1, 16, 18, 45, 0, 0, time.UTC)}
}

func TestMarkDoneIdempotent(t *testing.T) {
	store := newStore(t)
	l := Load(store, testClock())

	for i := 0; i < 2; i++ {
		if err := l.MarkDone("08:00", "2025-01-16"); err != nil {
			t.Fatalf("MarkDone failed: %v", err)
		}
	}
	if err := l.MarkDone("13:00", "2025-01-16"); err != nil {
		t.Fatal(err)
	}
	if err := l.MarkDone("08:00", "2025-01-15"); err != nil {
		t.Fatal(err)
	}

	if !l.IsDone("08:00", "2025-01-16") {
		t.Error("08:00 should be done")
	}
	if l.IsDone("07:00", "2025-01-16") {
		t.Error("07:00 should not be done")
	}
	if got := l.CountDoneForDay("2025-01-16"); got != 2 {
		t.Errorf("CountDoneForDay = %d, want 2", got)
	}
	if got := l.CountDoneForDay("2025-01-17"); got != 0 {
		t.Errorf("CountDoneForDay(empty day) = %d, want 0", got)
	}

	data, err := store.Get(constants.KeyCompleted)
	if err != nil {
		t.Fatal(err)
	}
	var persisted map[string]bool
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{
		"08:00-2025-01-16": true,
		"13:00-2025-01-16": true,
		"08:00-2025-01-15": true,
	}
	if diff := cmp.Diff(want, persisted); diff != "" {
		t.Errorf("persisted COMPLETED mismatch (-want +got):\n%s", diff)
	}
}

func TestLogWorkout(t *testing.T) {
	store := newStore(t)
	c := testClock()
	l := Load(store, c)

	if err := l.MarkDone("07:00", "2025-01-16"); err != nil {
		t.Fatal(err)
	}
	if err := l.MarkDone("08:00", "2025-01-16"); err != nil {
		t.Fatal(err)
	}

	if err := l.LogWorkout("2025-01-16", "  "); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	entry, ok := l.DailyLog("2025-01-16")
	if !ok {
		t.Fatal("entry missing")
	}
	want := models.DailyLogEntry{
		WorkoutDone:    constants.WorkoutNotLogged,
		LoggedAt:       "2025-01-16T18:45:00Z",
		MealsCompleted: 2,
	}
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}

	// a later log replaces the earlier one
	c.Advance(time.Hour)
	if err := l.LogWorkout("2025-01-16", "Legs + 5K run"); err != nil {
		t.Fatal(err)
	}
	entry, _ = l.DailyLog("2025-01-16")
	if entry.WorkoutDone != "Legs + 5K run" || entry.LoggedAt != "2025-01-16T19:45:00Z" {
		t.Errorf("entry not replaced: %+v", entry)
	}

	reloaded := Load(store, c)
	if got, _ := reloaded.DailyLog("2025-01-16"); got != entry {
		t.Errorf("reloaded entry = %+v, want %+v", got, entry)
	}
}

func TestLogWeight(t *testing.T) {
	store := newStore(t)
	l := Load(store, testClock())

	tests := []struct {
		name string
		date string
		kg   float64
		want bool
	}{
		{name: "first entry", date: "2025-01-16", kg: 82.4, want: true},
		{name: "second entry same day", date: "2025-01-16", kg: 80.0, want: false},
		{name: "zero", date: "2025-01-17", kg: 0, want: false},
		{name: "negative", date: "2025-01-17", kg: -3, want: false},
		{name: "nan", date: "2025-01-17", kg: math.NaN(), want: false},
		{name: "inf", date: "2025-01-17", kg: math.Inf(1), want: false},
		{name: "next day", date: "2025-01-17", kg: 82.1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.LogWeight(tt.date, tt.kg)
			if err != nil {
				t.Fatalf("LogWeight error: %v", err)
			}
			if got != tt.want {
				t.Errorf("LogWeight(%s, %v) = %v, want %v", tt.date, tt.kg, got, tt.want)
			}
		})
	}

	if kg, _ := l.Weight("2025-01-16"); kg != 82.4 {
		t.Errorf("write-once violated: weight = %v, want 82.4", kg)
	}

	want := map[string]float64{"2025-01-16": 82.4, "2025-01-17": 82.1}
	if diff := cmp.Diff(want, Load(store, testClock()).Weights()); diff != "" {
		t.Errorf("reloaded weights mismatch (-want +got):\n%s", diff)
	}
}

func TestWeightsReturnsCopy(t *testing.T) {
	l := Load(newStore(t), testClock())
	if _, err := l.LogWeight("2025-01-16", 80); err != nil {
		t.Fatal(err)
	}

	w := l.Weights()
	w["2025-01-16"] = 1
	if kg, _ := l.Weight("2025-01-16"); kg != 80 {
		t.Errorf("Weights() exposed internal map")
	}
}

func TestLoadMalformed(t *testing.T) {
	store := newStore(t)
	for _, key := range []string{constants.KeyCompleted, constants.KeyLog, constants.KeyWeight} {
		if err := store.Set(key, []byte("{broken")); err != nil {
			t.Fatal(err)
		}
	}

	l := Load(store, testClock())
	if l.CountDoneForDay("2025-01-16") != 0 || len(l.Weights()) != 0 {
		t.Error("malformed snapshots should load as empty")
	}
	if _, ok := l.DailyLog("2025-01-16"); ok {
		t.Error("malformed log should load as empty")
	}

	// the ledger stays usable and overwrites the broken snapshot
	if err := l.MarkDone("08:00", "2025-01-16"); err != nil {
		t.Fatal(err)
	}
	if !Load(store, testClock()).IsDone("08:00", "2025-01-16") {
		t.Error("snapshot not rewritten after recovery")
	}
}

func TestLoadFiltersInvalidEntries(t *testing.T) {
	store := newStore(t)
	if err := store.Set(constants.KeyCompleted, []byte(`{"08:00-2025-01-16":true,"13:00-2025-01-16":false}`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(constants.KeyWeight, []byte(`{"2025-01-15":-1,"2025-01-16":81.5}`)); err != nil {
		t.Fatal(err)
	}

	l := Load(store, testClock())
	if got := l.CountDoneForDay("2025-01-16"); got != 1 {
		t.Errorf("CountDoneForDay = %d, want 1", got)
	}
	if diff := cmp.Diff(map[string]float64{"2025-01-16": 81.5}, l.Weights()); diff != "" {
		t.Errorf("weights mismatch (-want +got):\n%s", diff)
	}
}

func TestPersistenceErrorsAreReturned(t *testing.T) {
	l := Load(failingStore{newStore(t)}, testClock())

	if err := l.MarkDone("08:00", "2025-01-16"); err == nil {
		t.Error("MarkDone should surface the write error")
	}
	if err := l.LogWorkout("2025-01-16", "Push"); err == nil {
		t.Error("LogWorkout should surface the write error")
	}
	if _, err := l.LogWeight("2025-01-16", 80); err == nil {
		t.Error("LogWeight should surface the write error")
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"72.4", 72.4, true},
		{" 80 ", 80, true},
		{"", 0, false},
		{"abc", 0, false},
		{"0", 0, false},
		{"-5", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseWeight(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseWeight(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "eatforce.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	l := Load(store, testClock())
	if err := l.MarkDone("18:00", "2025-01-16"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.LogWeight("2025-01-16", 79.9); err != nil {
		t.Fatal(err)
	}

	reloaded := Load(store, testClock())
	if !reloaded.IsDone("18:00", "2025-01-16") {
		t.Error("completion lost across reload")
	}
	if kg, ok := reloaded.Weight("2025-01-16"); !ok || kg != 79.9 {
		t.Errorf("weight = %v, %v after reload", kg, ok)
	}
}
