package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("205")
	muted  = lipgloss.Color("240")

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true).
			MarginTop(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)

	currentPanelStyle = panelStyle.
				BorderForeground(accent)

	dimStyle = lipgloss.NewStyle().Foreground(muted)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Strikethrough(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	barFillStyle  = lipgloss.NewStyle().Foreground(accent)
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
)
