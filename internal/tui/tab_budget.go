package tui

import (
	"fmt"
	"strconv"
	"strings"

	"budgetwise/internal/budget"
	"budgetwise/internal/cli"
	"budgetwise/internal/tui/components"
	"budgetwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// budgetTabState holds the slider cursor and the inline amount editor.
// Row 0 is income; rows 1..n are categories in budget order.
type budgetTabState struct {
	cursor  int
	editing bool
	input   textinput.Model
	note    string
}

// sliderStep returns the h/l increment, scaled to income so the sliders
// stay usable at any scale. Big steps (H/L) are 10x.
func (a App) sliderStep() int64 {
	step := a.snap.Income / 100
	step -= step % 10
	if step < 10 {
		step = 10
	}
	return step
}

func (a App) updateBudgetKeys(key string) (tea.Model, tea.Cmd, bool) {
	rows := len(a.snap.Budget) + 1 // income + categories

	switch key {
	case "j", "down":
		a.budgetTab.cursor = (a.budgetTab.cursor + 1) % rows
		return a, nil, true
	case "k", "up":
		a.budgetTab.cursor = (a.budgetTab.cursor - 1 + rows) % rows
		return a, nil, true
	case "h":
		return a.adjustSelected(-a.sliderStep()), nil, true
	case "l":
		return a.adjustSelected(a.sliderStep()), nil, true
	case "H":
		return a.adjustSelected(-10 * a.sliderStep()), nil, true
	case "L":
		return a.adjustSelected(10 * a.sliderStep()), nil, true
	case "0":
		if a.budgetTab.cursor > 0 {
			return a.setSelected(0), nil, true
		}
		return a, nil, true
	case "enter":
		ti := textinput.New()
		ti.CharLimit = 12
		ti.Width = 14
		ti.Prompt = ""
		ti.SetValue(strconv.FormatInt(a.selectedAmount(), 10))
		ti.Focus()
		a.budgetTab.input = ti
		a.budgetTab.editing = true
		a.budgetTab.note = ""
		return a, textinput.Blink, true
	}
	return a, nil, false
}

func (a App) updateBudgetInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.budgetTab.editing = false
		return a, nil
	case "enter":
		raw := strings.TrimSpace(a.budgetTab.input.Value())
		a.budgetTab.editing = false
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			a.budgetTab.note = "enter a whole non-negative amount"
			return a, nil
		}
		return a.setSelected(v), nil
	}
	var cmd tea.Cmd
	a.budgetTab.input, cmd = a.budgetTab.input.Update(msg)
	return a, cmd
}

func (a App) selectedAmount() int64 {
	if a.budgetTab.cursor == 0 {
		return a.snap.Income
	}
	return a.snap.Budget[a.budgetTab.cursor-1].Amount
}

func (a App) adjustSelected(delta int64) App {
	return a.setSelected(a.selectedAmount() + delta)
}

// setSelected applies a new value to the selected row. Income changes
// shrink every category proportionally; category changes shrink the
// others to keep the total within income.
func (a App) setSelected(value int64) App {
	if value < 0 {
		value = 0
	}
	a.budgetTab.note = ""

	if a.budgetTab.cursor == 0 {
		if max := a.cfg.General.IncomeMax; max > 0 && value > max {
			value = max
			a.budgetTab.note = fmt.Sprintf("income capped at %s", cli.FormatAmount(a.cfg.General.Currency, max))
		}
		a.snap.Income = value
		a.snap.Budget = budget.Normalize(a.snap.Budget, value)
		return a
	}

	cat := a.snap.Budget[a.budgetTab.cursor-1].Category
	next, err := budget.ApplyEdit(a.snap.Budget, a.snap.Income, cat, value)
	if err != nil {
		a.budgetTab.note = err.Error()
		return a
	}
	a.snap.Budget = next
	return a
}

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	cur := a.cfg.General.Currency

	var b strings.Builder
	b.WriteString("\n")

	total := a.snap.Budget.Total()
	unalloc := a.snap.Income - total
	unallocHint := "room to allocate"
	if unalloc == 0 {
		unallocHint = "fully allocated"
	}
	b.WriteString(components.MetricCardRow([]struct{ Label, Value, Hint string }{
		{"Income", cli.FormatAmount(cur, a.snap.Income), "per month"},
		{"Allocated", cli.FormatAmount(cur, total), cli.FormatPercent(cli.Share(total, a.snap.Income)) + " of income"},
		{"Unallocated", cli.FormatAmount(cur, unalloc), unallocHint},
	}, cw))
	b.WriteString("\n\n")

	labelW := 0
	for _, al := range a.snap.Budget {
		if len(al.Category) > labelW {
			labelW = len(al.Category)
		}
	}
	if labelW < len("income") {
		labelW = len("income")
	}

	barWidth := cw - labelW - 28
	if barWidth > 40 {
		barWidth = 40
	}
	if barWidth < 10 {
		barWidth = 10
	}

	// Income row scales against the configured ceiling.
	incomeShare := 0.0
	if max := a.cfg.General.IncomeMax; max > 0 {
		incomeShare = float64(a.snap.Income) / float64(max)
	}
	b.WriteString(a.budgetRow("income", 0, a.snap.Income, incomeShare, labelW, barWidth))
	b.WriteString("\n")

	for i, al := range a.snap.Budget {
		share := 0.0
		if a.snap.Income > 0 {
			share = float64(al.Amount) / float64(a.snap.Income)
		}
		b.WriteString(a.budgetRow(al.Category, i+1, al.Amount, share, labelW, barWidth))
		b.WriteString("\n")
	}

	if a.budgetTab.note != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Orange).Render("  " + a.budgetTab.note))
		b.WriteString("\n")
	}

	hint := "  [j/k]select  [h/l]adjust  [H/L]big step  [enter]type amount  [0]clear"
	if a.budgetTab.editing {
		hint = "  [enter]apply  [esc]cancel"
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(hint))

	return b.String()
}

func (a App) budgetRow(label string, row int, amount int64, share float64, labelW, barWidth int) string {
	selected := a.budgetTab.cursor == row

	if selected && a.budgetTab.editing {
		t := theme.Active
		marker := lipgloss.NewStyle().Foreground(t.AccentBright).Render("▸ ")
		labelStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
		return marker + labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
			lipgloss.NewStyle().Foreground(t.TextPrimary).Render(a.cfg.General.Currency) +
			a.budgetTab.input.View()
	}

	return components.AllocationBar(
		label,
		cli.FormatAmount(a.cfg.General.Currency, amount),
		share, selected, labelW, barWidth,
	)
}
