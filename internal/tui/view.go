package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/eatforce/internal/app"
	"github.com/julianstephens/eatforce/internal/constants"
)

const (
	barWidth   = 24
	alertCount = 3
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateWeightForm, StateWorkoutForm:
		title := "LOG WEIGHT"
		if m.state == StateWorkoutForm {
			title = "LOG WORKOUT"
		}
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(title),
			"",
			m.form.View(),
			dimStyle.Render("esc to cancel"),
		))
	}

	status := m.status
	if status == "" {
		status = " "
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		warningStyle.Render(status),
		m.help.View(m.keys),
	)
}

// render rebuilds the dashboard into the viewport. With follow set, the viewport
// scrolls so the selected slot stays visible.
func (m *Model) render(follow bool) {
	content, line := m.dashboard()
	m.viewport.SetContent(content)
	if !follow {
		return
	}
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// dashboard returns the page content and the line on which the selected slot starts.
func (m Model) dashboard() (string, int) {
	var b strings.Builder
	d := m.day

	b.WriteString(titleStyle.Render("EATFORCE") + "  " +
		clockStyle.Render(m.now.Format("15:04:05")) + "  " +
		d.Date.Format("Monday, 02 January 2006") + "\n")
	fmt.Fprintf(&b, "Cycle day %d/%d  %s %d/%d Annihilated\n",
		d.Cycle.Index+1, constants.CycleLength, progressBar(d.Done, d.Total), d.Done, d.Total)
	b.WriteString(dimStyle.Render(fmt.Sprintf("💧 %.1fL water · 👟 %dK steps · %d slots",
		constants.TargetWaterLiters, constants.TargetSteps/1000, d.Total)) + "\n")

	b.WriteString(sectionStyle.Render("SUPPLEMENT PROTOCOL") + "\n")
	for _, item := range app.Protocol(d.Cycle.Supplements) {
		if item.Active {
			b.WriteString(activeStyle.Render("● "+item.Name) + dimStyle.Render("  "+item.With) + "\n")
		} else {
			b.WriteString(dimStyle.Render("○ "+item.Name+"  "+item.With) + "\n")
		}
	}

	b.WriteString(sectionStyle.Render("TODAY'S MISSION") + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.missionPanel(), " ", m.weightPanel()) + "\n")

	if d.Current >= 0 {
		s := d.Slots[d.Current]
		lines := []string{
			titleStyle.Render("NOW · " + s.Time + "  " + s.Title),
			s.Description,
		}
		if len(s.Stack) > 0 {
			lines = append(lines, "💊 "+strings.Join(s.Stack, constants.SupplementSeparator))
		}
		b.WriteString(currentPanelStyle.Render(strings.Join(lines, "\n")) + "\n")
	}

	b.WriteString(sectionStyle.Render("SCHEDULE") + "\n")
	selectedLine := 0
	for i, s := range d.Slots {
		if i == m.selected {
			selectedLine = strings.Count(b.String(), "\n")
		}
		b.WriteString(m.slotRow(i, s))
	}

	b.WriteString(sectionStyle.Render("ALERTS") + "\n")
	alerts := m.app.Alerts(alertCount)
	if len(alerts) == 0 {
		b.WriteString(dimStyle.Render("No alerts yet.") + "\n")
	}
	for _, n := range alerts {
		b.WriteString(dimStyle.Render(n.At.Format("15:04")) + "  " + n.Text() + "\n")
	}

	return docStyle.Render(b.String()), selectedLine + docStyle.GetPaddingTop()
}

func (m Model) missionPanel() string {
	d := m.day
	lines := []string{
		"Lunch    " + d.Cycle.Lunch,
		"Workout  " + d.Cycle.Workout,
	}
	if d.Logged && d.Workout.WorkoutDone != "" {
		lines = append(lines, activeStyle.Render("Logged   "+d.Workout.WorkoutDone))
	} else {
		lines = append(lines, dimStyle.Render("Logged   "+constants.WorkoutNotLogged))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) weightPanel() string {
	s := m.summary
	lines := []string{"Body weight"}
	if s.WeightSet {
		lines = append(lines, activeStyle.Render(fmt.Sprintf("%.1f kg 🔒", s.Weight)))
	} else {
		lines = append(lines, dimStyle.Render("press w to log"))
	}
	if s.HasTrend {
		lines = append(lines, "Trend  "+s.Trend+" kg")
	} else {
		lines = append(lines, dimStyle.Render("Trend  "+constants.MissingValuePlaceholder))
	}
	lines = append(lines, fmt.Sprintf("Streak %d days", s.Streak))
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) slotRow(i int, s app.SlotView) string {
	mark := "[ ]"
	style := lipgloss.NewStyle()
	switch s.Status {
	case app.StatusDone:
		mark = "[x]"
		style = doneStyle
	case app.StatusPast:
		mark = "[-]"
		style = dimStyle
	}
	pointer := "  "
	if s.Current {
		pointer = "▶ "
	}

	row := fmt.Sprintf("%s%s %s  %s · %s", pointer, mark, s.Time, s.Title, s.Subtitle)
	if i == m.selected {
		row = selectedStyle.Render(row)
	} else {
		row = style.Render(row)
	}

	var b strings.Builder
	b.WriteString(row + "\n")
	if len(s.Stack) > 0 {
		b.WriteString(dimStyle.Render("         💊 "+strings.Join(s.Stack, constants.SupplementSeparator)) + "\n")
	}
	if s.Note != "" {
		b.WriteString(dimStyle.Render("         "+s.Note) + "\n")
	}
	return b.String()
}

func progressBar(done, total int) string {
	filled := 0
	if total > 0 {
		filled = done * barWidth / total
	}
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}
