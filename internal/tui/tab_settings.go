package tui

import (
	"fmt"
	"strconv"
	"strings"

	"budgetwise/internal/config"
	"budgetwise/internal/tui/components"
	"budgetwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingsState holds the settings cursor and inline field editor.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	note    string
	dirty   bool
}

const (
	setFieldAPIKey = iota
	setFieldModel
	setFieldCurrency
	setFieldIncomeMax
	setFieldTheme
	setFieldCount
)

var settingsLabels = [setFieldCount]string{
	"Gemini API key",
	"Generate model",
	"Currency symbol",
	"Income ceiling",
	"Theme",
}

func (a App) settingsValue(field int) string {
	switch field {
	case setFieldAPIKey:
		if a.cfg.Gemini.APIKey == "" {
			return ""
		}
		return maskKey(a.cfg.Gemini.APIKey)
	case setFieldModel:
		return a.cfg.Gemini.GenerateModel
	case setFieldCurrency:
		return a.cfg.General.Currency
	case setFieldIncomeMax:
		return strconv.FormatInt(a.cfg.General.IncomeMax, 10)
	case setFieldTheme:
		return a.cfg.Appearance.Theme
	}
	return ""
}

func maskKey(k string) string {
	if len(k) <= 8 {
		return strings.Repeat("*", len(k))
	}
	return k[:4] + strings.Repeat("*", 8) + k[len(k)-4:]
}

func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		a.settings.cursor = (a.settings.cursor + 1) % setFieldCount
		return a, nil, true
	case "k", "up":
		a.settings.cursor = (a.settings.cursor - 1 + setFieldCount) % setFieldCount
		return a, nil, true
	case "enter":
		if a.settings.cursor == setFieldTheme {
			return a.cycleTheme(), nil, true
		}
		ti := textinput.New()
		ti.CharLimit = 120
		ti.Width = 48
		ti.Prompt = ""
		switch a.settings.cursor {
		case setFieldAPIKey:
			ti.EchoMode = textinput.EchoPassword
		case setFieldModel:
			ti.SetValue(a.cfg.Gemini.GenerateModel)
		case setFieldCurrency:
			ti.SetValue(a.cfg.General.Currency)
		case setFieldIncomeMax:
			ti.SetValue(strconv.FormatInt(a.cfg.General.IncomeMax, 10))
		}
		ti.Focus()
		a.settings.input = ti
		a.settings.editing = true
		a.settings.note = ""
		return a, textinput.Blink, true
	case "s":
		return a.saveSettings(), nil, true
	}
	return a, nil, false
}

func (a App) cycleTheme() App {
	names := theme.Names()
	cur := 0
	for i, n := range names {
		if n == a.cfg.Appearance.Theme {
			cur = i
			break
		}
	}
	next := names[(cur+1)%len(names)]
	a.cfg.Appearance.Theme = next
	theme.SetActive(next)
	a.settings.dirty = true
	a.settings.note = "theme: " + next + " (press s to save)"
	return a
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.settings.editing = false
		return a, nil
	case "enter":
		raw := strings.TrimSpace(a.settings.input.Value())
		a.settings.editing = false
		switch a.settings.cursor {
		case setFieldAPIKey:
			a.cfg.Gemini.APIKey = raw
			a.adv = a.buildAdv(a.cfg)
			a.advReady = raw != "" || config.GetAPIKey(a.cfg) != ""
		case setFieldModel:
			if raw != "" {
				a.cfg.Gemini.GenerateModel = raw
				a.adv = a.buildAdv(a.cfg)
			}
		case setFieldCurrency:
			if raw != "" {
				a.cfg.General.Currency = raw
			}
		case setFieldIncomeMax:
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || v <= 0 {
				a.settings.note = "income ceiling must be a positive whole number"
				return a, nil
			}
			a.cfg.General.IncomeMax = v
			if a.snap.Income > v {
				a = a.capIncome(v)
			}
		}
		a.settings.dirty = true
		a.settings.note = "changed (press s to save)"
		return a, nil
	}
	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a App) capIncome(max int64) App {
	cursor := a.budgetTab.cursor
	a.budgetTab.cursor = 0
	a = a.setSelected(max)
	a.budgetTab.cursor = cursor
	return a
}

func (a App) saveSettings() App {
	a.cfg.General.Income = a.snap.Income
	if err := config.Save(a.cfg); err != nil {
		a.settings.note = "save failed: " + err.Error()
		return a
	}
	a.settings.dirty = false
	a.settings.note = "saved to " + config.ConfigPath()
	return a
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	var b strings.Builder
	b.WriteString("\n")

	labelW := 0
	for _, l := range settingsLabels {
		if len(l) > labelW {
			labelW = len(l)
		}
	}

	var rows strings.Builder
	for i := 0; i < setFieldCount; i++ {
		marker := "  "
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		if i == a.settings.cursor {
			marker = lipgloss.NewStyle().Foreground(t.AccentBright).Render("▸ ")
			labelStyle = lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
		}

		value := a.settingsValue(i)
		valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		if value == "" {
			value = "(not set)"
			valueStyle = lipgloss.NewStyle().Foreground(t.TextDim)
		}
		rendered := valueStyle.Render(value)
		if i == a.settings.cursor && a.settings.editing {
			rendered = a.settings.input.View()
		}

		fmt.Fprintf(&rows, "%s%s  %s\n",
			marker, labelStyle.Render(fmt.Sprintf("%-*s", labelW, settingsLabels[i])), rendered)
	}

	b.WriteString(components.ContentCard("Settings", rows.String(), cw))
	b.WriteString("\n")

	if a.settings.note != "" {
		noteStyle := lipgloss.NewStyle().Foreground(t.Green)
		if strings.Contains(a.settings.note, "failed") || strings.Contains(a.settings.note, "must be") {
			noteStyle = lipgloss.NewStyle().Foreground(t.Orange)
		}
		b.WriteString(noteStyle.Render("  " + a.settings.note))
		b.WriteString("\n")
	}

	hint := "  [j/k]select  [enter]edit/cycle  [s]save"
	if a.settings.editing {
		hint = "  [enter]apply  [esc]cancel"
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(hint))

	return b.String()
}
