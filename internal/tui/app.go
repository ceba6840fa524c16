// Package tui provides the interactive Bubble Tea dashboard for budgetwise.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"budgetwise/internal/advisor"
	"budgetwise/internal/budget"
	"budgetwise/internal/config"
	"budgetwise/internal/model"
	"budgetwise/internal/tui/components"
	"budgetwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// AdvisorFactory builds an advisor from the current config. The TUI calls
// it again after settings changes so a newly entered API key takes effect
// without a restart.
type AdvisorFactory func(cfg config.Config) *advisor.Advisor

// adviceMsg is sent when an advice request completes.
type adviceMsg struct {
	question string // empty for a full-budget analysis
	answer   advisor.Answer
	err      error
}

// App is the root Bubble Tea model.
type App struct {
	cfg        config.Config
	buildAdv   AdvisorFactory
	adv        *advisor.Advisor
	advReady   bool // generation provider configured

	// Session state: the budget snapshot and question log. Discarded at
	// exit; only config is persisted.
	snap    model.Snapshot
	history *model.History

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	budgetTab budgetTabState
	advTab    advisorTabState
	settings  settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
)

const (
	tabIdxBudget = iota
	tabIdxAdvisor
	tabIdxHistory
	tabIdxSettings
)

// NewApp creates a new TUI app model.
func NewApp(cfg config.Config, factory AdvisorFactory, advReady bool) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{
		cfg:       cfg,
		buildAdv:  factory,
		adv:       factory(cfg),
		advReady:  advReady,
		history:   &model.History{},
		needSetup: !config.Exists(),
		spinner:   sp,
	}
	a.snap = model.Snapshot{
		Income: cfg.General.Income,
		Budget: budget.Initialize(cfg.General.Income, cfg.Split()),
	}
	if a.needSetup {
		a.setupForm = newSetupForm(&a.setupVals, cfg)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Text-entry modes intercept all keys
		if a.activeTab == tabIdxBudget && a.budgetTab.editing {
			return a.updateBudgetInput(msg)
		}
		if a.activeTab == tabIdxAdvisor && a.advTab.focused {
			return a.updateAdvisorInput(msg)
		}
		if a.activeTab == tabIdxSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		switch a.activeTab {
		case tabIdxBudget:
			if m, cmd, handled := a.updateBudgetKeys(key); handled {
				return m, cmd
			}
		case tabIdxAdvisor:
			if m, cmd, handled := a.updateAdvisorKeys(key); handled {
				return m, cmd
			}
		case tabIdxSettings:
			if m, cmd, handled := a.updateSettingsKeys(key); handled {
				return m, cmd
			}
		}

		// Tab navigation
		switch key {
		case "b":
			a.activeTab = tabIdxBudget
		case "a":
			a.activeTab = tabIdxAdvisor
		case "y":
			a.activeTab = tabIdxHistory
		case "x":
			a.activeTab = tabIdxSettings
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil

	case adviceMsg:
		a.advTab.asking = false
		if msg.err != nil {
			a.advTab.errText = advisor.FormatError(msg.err)
			return a, nil
		}
		a.advTab.errText = ""
		a.advTab.answer = msg.answer
		a.advTab.question = msg.question
		a.advTab.scroll = 0

		q := msg.question
		if q == "" {
			q = "(full budget analysis)"
		}
		a.history.Add(model.HistoryEntry{
			Question: q,
			Answer:   msg.answer.Text,
			Source:   string(msg.answer.Source),
			AskedAt:  time.Now(),
		})
		return a, nil

	case spinner.TickMsg:
		if a.advTab.asking {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// askCmd requests an answer for a free-text question.
func (a App) askCmd(question string) tea.Cmd {
	adv, snap := a.adv, a.snap
	return func() tea.Msg {
		ans, err := adv.AnswerQuestion(context.Background(), snap, question)
		return adviceMsg{question: question, answer: ans, err: err}
	}
}

// analyzeCmd requests open-ended advice for the whole budget.
func (a App) analyzeCmd() tea.Cmd {
	adv, snap := a.adv, a.snap
	return func() tea.Msg {
		text, err := adv.AnalyzeBudget(context.Background(), snap, "")
		return adviceMsg{
			answer: advisor.Answer{Text: text, Source: advisor.SourceGenerated},
			err:    err,
		}
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  budgetwise needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, a.width)

	note := ""
	warn := false
	if !a.advReady {
		note = "AI advice off (no API key)"
		warn = true
	} else if a.advTab.asking {
		note = "thinking..."
	}
	statusBar := components.RenderStatusBar(a.width, note, warn)

	var content string
	switch a.activeTab {
	case tabIdxBudget:
		content = a.renderBudgetTab(cw)
	case tabIdxAdvisor:
		content = a.renderAdvisorTab(cw)
	case tabIdxHistory:
		content = a.renderHistoryTab(cw)
	case tabIdxSettings:
		content = a.renderSettingsTab(cw)
	}

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := a.height - headerH - statusH
	if contentH < 3 {
		contentH = 3
	}

	lines := strings.Split(content, "\n")
	if len(lines) > contentH {
		lines = lines[:contentH]
	}
	for len(lines) < contentH {
		lines = append(lines, "")
	}

	return header + "\n" + strings.Join(lines, "\n") + "\n" + statusBar
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"b a y x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Select row"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Budget"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"h l", "Adjust selected amount"},
		{"H L", "Adjust in big steps"},
		{"Enter", "Type an exact amount"},
		{"0", "Zero out the category"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Advisor"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"i or /", "Type a question"},
		{"g", "Analyze the whole budget"},
		{"J K", "Scroll the answer"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}
