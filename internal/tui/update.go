package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/eatforce/internal/app"
	"github.com/julianstephens/eatforce/internal/ledger"
	"github.com/julianstephens/eatforce/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-headerHeight)
		m.ready = true
		m.render(true)
		return m, nil

	case TickMsg:
		m.now = m.app.Now()
		if fired := m.app.Tick(m.now); len(fired) > 0 {
			m.status = "🔔 " + fired[len(fired)-1].Text()
		}
		m.refresh()
		m.render(false)
		return m, tick()

	case permissionMsg:
		m.applyPermission(msg)
		m.render(false)
		return m, nil
	}

	if m.state != StateDashboard {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		m.render(true)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.day.Slots)-1 {
			m.selected++
		}
		m.render(true)
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.markSelected()

	case key.Matches(msg, m.keys.Execute):
		m.markCurrent()

	case key.Matches(msg, m.keys.Weight):
		if m.day.HasWeight {
			m.status = "🔒 Weight already locked in for today."
			break
		}
		m.weightInput = new(string)
		m.form = newWeightForm(m.weightInput)
		m.state = StateWeightForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Workout):
		m.workoutInput = new(string)
		*m.workoutInput = m.day.Workout.WorkoutDone
		m.form = newWorkoutForm(m.workoutInput)
		m.state = StateWorkoutForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Alerts):
		if m.app.NotificationsEnabled() {
			m.status = "🔔 Alerts already active."
			break
		}
		m.status = "Requesting notification permission..."
		return m, m.requestPermission()

	case key.Matches(msg, m.keys.Report):
		dir := m.reportDir
		if dir == "" {
			dir = "."
		}
		path, err := m.app.WriteReport(dir)
		if err != nil {
			logger.Error("failed to write report", "error", err)
			m.status = "Report failed: " + err.Error()
			break
		}
		m.status = "📄 Report saved to " + path

	case key.Matches(msg, m.keys.Dismiss):
		alerts := m.app.Alerts(1)
		if len(alerts) == 0 {
			m.status = "No alerts to dismiss."
			break
		}
		m.app.DismissAlert(alerts[0].ID)
		m.status = "Dismissed: " + alerts[0].Title

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.refresh()
	m.render(false)
	return m, nil
}

func (m *Model) markSelected() {
	if len(m.day.Slots) == 0 {
		return
	}
	slot := m.day.Slots[m.selected]
	switch slot.Status {
	case app.StatusDone:
		m.status = fmt.Sprintf("%s already annihilated.", slot.Time)
		return
	case app.StatusPast:
		m.status = fmt.Sprintf("⏱ %s window has closed.", slot.Time)
		return
	}
	if _, err := m.app.MarkDone(slot.Time, m.day.Key); err != nil {
		logger.Error("failed to mark slot", "time", slot.Time, "error", err)
		m.status = "Could not save: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("✓ %s annihilated: %s", slot.Time, slot.Title)
}

func (m *Model) markCurrent() {
	slot, err := m.app.MarkCurrent()
	switch {
	case errors.Is(err, app.ErrNoCurrentSlot):
		m.status = "No slot within 30 minutes of now."
	case err != nil:
		logger.Error("failed to mark current slot", "error", err)
		m.status = "Could not save: " + err.Error()
	default:
		m.status = fmt.Sprintf("✓ %s annihilated: %s", slot.Time, slot.Title)
	}
}

func (m *Model) applyPermission(msg permissionMsg) {
	if msg.err != nil && !errors.Is(msg.err, app.ErrPermissionDenied) {
		m.status = "Notifications unavailable: " + msg.err.Error()
		return
	}
	if err := m.app.ApplyPermission(msg.granted); err != nil {
		logger.Error("failed to save notification setting", "error", err)
		m.status = "Could not save: " + err.Error()
		return
	}
	if msg.granted {
		m.status = "🔔 ALERTS ACTIVE"
	} else {
		m.status = "Notification permission denied."
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
		m.closeForm("Cancelled.")
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm("Cancelled.")
		return m, nil
	}
	return m, cmd
}

func (m *Model) submitForm() {
	status := ""
	switch m.state {
	case StateWeightForm:
		kg, ok := ledger.ParseWeight(*m.weightInput)
		if !ok {
			status = errInvalidWeight.Error()
			break
		}
		saved, err := m.app.LogWeight(kg)
		switch {
		case err != nil:
			logger.Error("failed to log weight", "error", err)
			status = "Could not save: " + err.Error()
		case !saved:
			status = "🔒 Weight already locked in for today."
		default:
			status = fmt.Sprintf("⚖ %.1f kg locked in.", kg)
		}
	case StateWorkoutForm:
		text := strings.TrimSpace(*m.workoutInput)
		if err := m.app.LogWorkout(text); err != nil {
			logger.Error("failed to log workout", "error", err)
			status = "Could not save: " + err.Error()
			break
		}
		status = "💪 Workout logged."
	}
	m.closeForm(status)
}

func (m *Model) closeForm(status string) {
	m.state = StateDashboard
	m.form = nil
	m.status = status
	m.refresh()
	m.render(false)
}
