package tui

import (
	"fmt"
	"strings"

	"budgetwise/internal/tui/components"
	"budgetwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const historyVisible = 5

func (a App) renderHistoryTab(cw int) string {
	t := theme.Active

	var b strings.Builder
	b.WriteString("\n")

	if a.history.Len() == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("No questions asked yet. Ask something on the Advisor tab.")
		b.WriteString(components.ContentCard("History", empty, cw))
		return b.String()
	}

	qStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	ansStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(components.CardInnerWidth(cw))

	entries := a.history.Last(historyVisible)
	// Newest first on screen.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		body := metaStyle.Render(fmt.Sprintf("%s · %s", e.AskedAt.Format("15:04"), e.Source)) + "\n" +
			ansStyle.Render(summarize(e.Answer, 4))
		b.WriteString(components.ContentCard(qStyle.Render(e.Question), body, cw))
		b.WriteString("\n")
	}

	if a.history.Len() > historyVisible {
		b.WriteString(metaStyle.Render(fmt.Sprintf("  showing last %d of %d", historyVisible, a.history.Len())))
	}

	return b.String()
}

// summarize truncates an answer to at most n lines for the history list.
func summarize(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[:n], "\n") + " …"
}
