package components

import (
	"fmt"

	"budgetwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForShare returns green/yellow/orange/red based on how much of the
// income a single category consumes.
func ColorForShare(share float64) string {
	t := theme.Active
	switch {
	case share >= 0.6:
		return string(t.Red)
	case share >= 0.4:
		return string(t.Orange)
	case share >= 0.25:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// AllocationBar renders one category's slider row: label, bar scaled to
// the category's share of income, amount, and percentage.
func AllocationBar(label, amount string, share float64, selected bool, labelW, barWidth int) string {
	t := theme.Active

	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForShare(share)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	marker := "  "
	if selected {
		labelStyle = lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
		marker = lipgloss.NewStyle().Foreground(t.AccentBright).Render("▸ ")
	}

	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(selected)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForShare(share)))

	return marker +
		labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(share) + " " +
		amountStyle.Render(fmt.Sprintf("%12s", amount)) + " " +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", share*100))
}
