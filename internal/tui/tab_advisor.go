package tui

import (
	"strings"

	"budgetwise/internal/advisor"
	"budgetwise/internal/tui/components"
	"budgetwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// advisorTabState holds the question input and the latest answer.
type advisorTabState struct {
	input    textinput.Model
	focused  bool
	asking   bool
	question string
	answer   advisor.Answer
	errText  string
	scroll   int
}

const answerViewLines = 14

func (a App) updateAdvisorKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "i", "/":
		ti := textinput.New()
		ti.Placeholder = "How can I save more money?"
		ti.CharLimit = 200
		ti.Prompt = "> "
		ti.Focus()
		a.advTab.input = ti
		a.advTab.focused = true
		return a, textinput.Blink, true
	case "g":
		if a.advTab.asking {
			return a, nil, true
		}
		a.advTab.asking = true
		a.advTab.errText = ""
		return a, tea.Batch(a.analyzeCmd(), a.spinner.Tick), true
	case "J":
		a.advTab.scroll++
		return a, nil, true
	case "K":
		if a.advTab.scroll > 0 {
			a.advTab.scroll--
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a App) updateAdvisorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.advTab.focused = false
		return a, nil
	case "enter":
		q := strings.TrimSpace(a.advTab.input.Value())
		if q == "" {
			a.advTab.focused = false
			return a, nil
		}
		if a.advTab.asking {
			return a, nil
		}
		a.advTab.focused = false
		a.advTab.asking = true
		a.advTab.errText = ""
		return a, tea.Batch(a.askCmd(q), a.spinner.Tick)
	}
	var cmd tea.Cmd
	a.advTab.input, cmd = a.advTab.input.Update(msg)
	return a, cmd
}

func (a App) renderAdvisorTab(cw int) string {
	t := theme.Active

	var b strings.Builder
	b.WriteString("\n")

	// Question input
	inputBody := lipgloss.NewStyle().Foreground(t.TextDim).
		Render("press [i] or [/] to ask a question, [g] to analyze the whole budget")
	if a.advTab.focused {
		inputBody = a.advTab.input.View()
	} else if a.advTab.question != "" {
		inputBody = lipgloss.NewStyle().Foreground(t.TextPrimary).Render("> " + a.advTab.question)
	}
	b.WriteString(components.ContentCard("Ask the advisor", inputBody, cw))
	b.WriteString("\n\n")

	// Answer
	switch {
	case a.advTab.asking:
		b.WriteString(components.ContentCard("", a.spinner.View()+" consulting...", cw))
	case a.advTab.errText != "":
		body := lipgloss.NewStyle().Foreground(t.Orange).Render(a.advTab.errText)
		b.WriteString(components.ContentCard("", body, cw))
	case a.advTab.answer.Text != "":
		b.WriteString(a.renderAnswer(cw))
	default:
		hint := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("Answers to common questions come from the built-in FAQ;\neverything else goes to Gemini with your budget as context.")
		b.WriteString(components.ContentCard("", hint, cw))
	}

	return b.String()
}

func (a App) renderAnswer(cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	wrapped := lipgloss.NewStyle().Width(inner).Render(a.advTab.answer.Text)
	lines := strings.Split(wrapped, "\n")

	scroll := a.advTab.scroll
	if scroll > len(lines)-1 {
		scroll = len(lines) - 1
	}
	if scroll < 0 {
		scroll = 0
	}
	end := scroll + answerViewLines
	if end > len(lines) {
		end = len(lines)
	}
	visible := strings.Join(lines[scroll:end], "\n")

	title := "Advice"
	switch a.advTab.answer.Source {
	case advisor.SourceCatalog, advisor.SourceCatalogRaw:
		title = "Advice · from FAQ"
	case advisor.SourceGenerated:
		title = "Advice · Gemini"
	}
	if len(lines) > answerViewLines {
		title += "  [J/K scroll]"
	}

	card := components.ContentCard(title, visible, cw)

	if a.advTab.answer.Notice != "" {
		notice := lipgloss.NewStyle().Foreground(t.Orange).Render("  " + a.advTab.answer.Notice)
		card += "\n" + notice
	}
	return card
}
