package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle   = lipgloss.NewStyle().Italic(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)

	dropZoneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(56)
	dropZoneFocusedStyle = dropZoneStyle.BorderForeground(lipgloss.Color("12"))
	dropZoneActiveStyle  = dropZoneStyle.
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("10"))
	buttonStyle        = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder())
	buttonFocusedStyle = buttonStyle.Bold(true).Reverse(true)
)
