package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/utils"
)

const title = "EATFORCE DAILY DOMINATION REPORT"

// Snapshot is everything printed on a daily report.
type Snapshot struct {
	Date           time.Time
	Weight         *float64
	MealsCompleted int
	MealsTotal     int
	Lunch          string
	Workout        string
	ActualWorkout  string
	GeneratedAt    time.Time
}

// Lines renders the report body, one entry per printed line.
func (s Snapshot) Lines() []string {
	weight := constants.MissingValuePlaceholder
	if s.Weight != nil {
		weight = strconv.FormatFloat(*s.Weight, 'f', -1, 64)
	}
	actual := s.ActualWorkout
	if actual == "" {
		actual = constants.WorkoutNotLogged
	}

	return []string{
		fmt.Sprintf("Date: %s", s.Date.Format(constants.ReportDateFormat)),
		fmt.Sprintf("Weight: %s kg", weight),
		fmt.Sprintf("Meals Annihilated: %d/%d", s.MealsCompleted, s.MealsTotal),
		fmt.Sprintf("Lunch Target: %s", s.Lunch),
		fmt.Sprintf("Workout Plan: %s", s.Workout),
		fmt.Sprintf("Actual Workout: %s", actual),
	}
}

// FileName returns the report file name for the snapshot's date.
func FileName(date time.Time) string {
	return constants.ReportFilePrefix + utils.FormatDate(date) + constants.ReportFileSuffix
}

// Render writes the snapshot as a single-page A4 PDF.
func Render(w io.Writer, s Snapshot) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator(constants.AppName+" "+constants.Version, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(20, 30, title)

	pdf.SetFont("Helvetica", "", 16)
	pdf.SetXY(20, 43)
	for _, line := range s.Lines() {
		pdf.SetX(20)
		pdf.MultiCell(170, 8, tr(line), "", "L", false)
		pdf.Ln(7)
	}

	pdf.SetFont("Helvetica", "", 12)
	pdf.Ln(10)
	pdf.SetX(20)
	pdf.MultiCell(170, 6, tr("Generated: "+s.GeneratedAt.Format("15:04:05")), "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// WriteFile renders the snapshot into dir and returns the file path.
func WriteFile(dir string, s Snapshot) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, s); err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(s.Date))
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
