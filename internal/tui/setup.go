package tui

import (
	"fmt"
	"strconv"
	"strings"

	"budgetwise/internal/budget"
	"budgetwise/internal/config"
	"budgetwise/internal/model"
	"budgetwise/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues backs the first-run form fields.
type setupValues struct {
	income string
	apiKey string
	theme  string
}

func newSetupForm(vals *setupValues, cfg config.Config) *huh.Form {
	vals.income = strconv.FormatInt(cfg.General.Income, 10)
	vals.theme = cfg.Appearance.Theme
	max := cfg.General.IncomeMax

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly income").
				Description(fmt.Sprintf("Whole amount in %s, up to %d", cfg.General.Currency, max)).
				Value(&vals.income).
				Validate(func(s string) error {
					v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
					if err != nil || v < 0 {
						return fmt.Errorf("enter a whole non-negative number")
					}
					if v > max {
						return fmt.Errorf("income above the %d ceiling", max)
					}
					return nil
				}),

			huh.NewInput().
				Title("Gemini API key").
				Description("Optional. Leave blank to run without AI advice;\nGEMINI_API_KEY in the environment also works.").
				EchoMode(huh.EchoModePassword).
				Value(&vals.apiKey),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.theme),
		),
	).WithTheme(huh.ThemeBase16())
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		return a.finishSetup()
	}
	if a.setupForm.State == huh.StateAborted {
		return a, tea.Quit
	}
	return a, cmd
}

// finishSetup persists the wizard answers and builds the starting budget.
func (a App) finishSetup() (tea.Model, tea.Cmd) {
	income, err := strconv.ParseInt(strings.TrimSpace(a.setupVals.income), 10, 64)
	if err != nil || income < 0 {
		income = a.cfg.General.Income
	}
	if income > a.cfg.General.IncomeMax {
		income = a.cfg.General.IncomeMax
	}

	a.cfg.General.Income = income
	a.cfg.Gemini.APIKey = strings.TrimSpace(a.setupVals.apiKey)
	a.cfg.Appearance.Theme = a.setupVals.theme
	theme.SetActive(a.cfg.Appearance.Theme)

	if err := config.Save(a.cfg); err != nil {
		a.advTab.errText = "could not save config: " + err.Error()
	}

	a.adv = a.buildAdv(a.cfg)
	a.advReady = config.GetAPIKey(a.cfg) != ""
	a.snap = model.Snapshot{
		Income: income,
		Budget: budget.Initialize(income, a.cfg.Split()),
	}

	a.needSetup = false
	a.setupForm = nil
	return a, nil
}
