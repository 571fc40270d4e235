package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/eatforce/internal/app"
	"github.com/julianstephens/eatforce/internal/stats"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateWeightForm
	StateWorkoutForm
)

// TickMsg drives the clock and the reminder engine once per second.
type TickMsg time.Time

type permissionMsg struct {
	granted bool
	err     error
}

const permissionTimeout = 10 * time.Second

// headerHeight is the number of rows reserved outside the viewport for the status
// line and help.
const headerHeight = 3

type Model struct {
	app       *app.App
	reportDir string

	state    SessionState
	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	form     *huh.Form

	weightInput  *string
	workoutInput *string

	day      app.Day
	summary  stats.Summary
	selected int
	status   string
	now      time.Time

	width, height int
	ready         bool
	quitting      bool
}

func NewModel(a *app.App, reportDir string) Model {
	vp := viewport.New(80, 20)
	// Arrow keys move the slot selection; the viewport only pages.
	vp.KeyMap.Up.SetEnabled(false)
	vp.KeyMap.Down.SetEnabled(false)

	m := Model{
		app:       a,
		reportDir: reportDir,
		state:     StateDashboard,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		viewport:  vp,
		now:       a.Now(),
	}
	m.refresh()
	if m.day.Current >= 0 {
		m.selected = m.day.Current
	}
	m.render(true)
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) requestPermission() tea.Cmd {
	a := m.app
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), permissionTimeout)
		defer cancel()
		granted, err := a.RequestPermission(ctx)
		return permissionMsg{granted: granted, err: err}
	}
}

// refresh reloads the day and stats from the app. The selection is clamped to the
// schedule length.
func (m *Model) refresh() {
	m.day = m.app.Today()
	m.summary = m.app.Stats()
	if m.selected >= len(m.day.Slots) {
		m.selected = len(m.day.Slots) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// State reports which screen is active.
func (m Model) State() SessionState {
	return m.state
}

// Selected is the index of the highlighted schedule row.
func (m Model) Selected() int {
	return m.selected
}

// Status is the last one-line message shown under the dashboard.
func (m Model) Status() string {
	return m.status
}
