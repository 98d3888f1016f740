package viz

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	panelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	legendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	tickStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213"))
)
