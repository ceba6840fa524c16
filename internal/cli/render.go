package cli

import (
	"fmt"
	"strings"

	"budgetwise/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	barStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)
)

const planBarWidth = 24

// RenderPlan renders a budget snapshot as an aligned table with share
// bars, for non-TUI command output.
func RenderPlan(snap model.Snapshot, currency string) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Monthly budget"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  (income %s)", FormatAmount(currency, snap.Income))))
	b.WriteString("\n\n")

	nameW := 0
	for _, a := range snap.Budget {
		if len(a.Category) > nameW {
			nameW = len(a.Category)
		}
	}

	for _, a := range snap.Budget {
		share := Share(a.Amount, snap.Income)
		fmt.Fprintf(&b, "  %s  %10s  %s %s\n",
			valueStyle.Render(fmt.Sprintf("%-*s", nameW, a.Category)),
			FormatAmount(currency, a.Amount),
			shareBar(share, planBarWidth),
			mutedStyle.Render(FormatPercent(share)),
		)
	}

	b.WriteString("\n")
	unalloc := snap.Unallocated()
	switch {
	case unalloc < 0:
		b.WriteString(warnStyle.Render(fmt.Sprintf("  over budget by %s", FormatAmount(currency, -unalloc))))
	case unalloc > 0:
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  unallocated: %s", FormatAmount(currency, unalloc))))
	default:
		b.WriteString(mutedStyle.Render("  fully allocated"))
	}
	b.WriteString("\n")

	return b.String()
}

// shareBar renders a fixed-width bar for a 0-1 share.
func shareBar(share float64, width int) string {
	filled := int(share * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
}
