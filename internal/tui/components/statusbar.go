package components

import (
	"budgetwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. note is optional right-
// aligned text (advice model, degradation warnings).
func RenderStatusBar(width int, note string, warn bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := ""
	if note != "" {
		noteStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		if warn {
			noteStyle = lipgloss.NewStyle().Foreground(t.Orange)
		}
		right = noteStyle.Render(note) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
