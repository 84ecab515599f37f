package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")

	runningStyle = lipgloss.NewStyle().Foreground(colorIris).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	logStyle     = lipgloss.NewStyle().Foreground(colorSlate).PaddingLeft(4)
	hintStyle    = lipgloss.NewStyle().Foreground(colorSlate).Faint(true)
)
