package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func sampleSnapshot() Snapshot {
	kg := 80.5
	return Snapshot{
		Date:           time.Date(2025, 1, 16, 20, 0, 0, 0, time.UTC),
		Weight:         &kg,
		MealsCompleted: 7,
		MealsTotal:     10,
		Lunch:          "Chickpea Salad Bowl + Grilled Tofu + Olive Oil Dressing",
		Workout:        "Lower Body Hypertrophy (Squats, RDL, Leg Press)",
		ActualWorkout:  "Squats 5x5",
		GeneratedAt:    time.Date(2025, 1, 16, 20, 15, 3, 0, time.UTC),
	}
}

func TestLines(t *testing.T) {
	want := []string{
		"Date: 16 January 2025",
		"Weight: 80.5 kg",
		"Meals Annihilated: 7/10",
		"Lunch Target: Chickpea Salad Bowl + Grilled Tofu + Olive Oil Dressing",
		"Workout Plan: Lower Body Hypertrophy (Squats, RDL, Leg Press)",
		"Actual Workout: Squats 5x5",
	}
	if diff := cmp.Diff(want, sampleSnapshot().Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesPlaceholders(t *testing.T) {
	s := sampleSnapshot()
	s.Weight = nil
	s.ActualWorkout = ""

	lines := s.Lines()
	if lines[1] != "Weight: — kg" {
		t.Errorf("weight line = %q", lines[1])
	}
	if lines[5] != "Actual Workout: Not logged" {
		t.Errorf("workout line = %q", lines[5])
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(time.Date(2025, 3, 4, 23, 59, 0, 0, time.UTC)); got != "EATFORCE_2025-03-04.pdf" {
		t.Errorf("FileName() = %q", got)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleSnapshot()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF: %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	path, err := WriteFile(dir, sampleSnapshot())
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if filepath.Base(path) != "EATFORCE_2025-01-16.pdf" {
		t.Errorf("path = %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("written file is not a PDF")
	}
}
