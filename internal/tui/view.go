package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders one line per phase. Output is shown under running and failed phases.
func (m *Model) View() string {
	var b strings.Builder
	for _, p := range m.phases {
		var icon string
		var style lipgloss.Style
		switch p.Status {
		case StatusDone:
			icon, style = "✓", doneStyle
		case StatusFailed:
			icon, style = "✗", failedStyle
		default:
			icon, style = m.spinner.View(), runningStyle
		}
		b.WriteString(style.Render(icon) + " " + p.Name + "\n")

		if p.Status == StatusDone {
			continue
		}
		for _, line := range p.Logs() {
			b.WriteString(logStyle.Render(m.clip(line)) + "\n")
		}
	}
	if m.interrupted && !m.done {
		b.WriteString(hintStyle.Render("interrupting...") + "\n")
	}
	return b.String()
}

// clip truncates line to the terminal width, less the log indentation.
func (m *Model) clip(line string) string {
	limit := m.width - logStyle.GetPaddingLeft()
	if m.width == 0 || lipgloss.Width(line) <= limit || limit <= 0 {
		return line
	}
	r := []rune(line)
	if len(r) > limit {
		r = r[:limit]
	}
	return string(r)
}
