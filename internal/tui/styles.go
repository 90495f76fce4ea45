package tui

import "github.com/charmbracelet/lipgloss"

// Leaf green for titles and borders, soft red for errors.
var (
	accentColor = lipgloss.Color("42")
	errorColor  = lipgloss.Color("203")

	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)
)
