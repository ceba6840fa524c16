package tui

import (
	"testing"

	"budgetwise/internal/advisor"
	"budgetwise/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := config.DefaultConfig()
	if err := config.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	factory := func(c config.Config) *advisor.Advisor {
		return advisor.New(nil, nil, c.General.Currency)
	}

	a := NewApp(cfg, factory, false)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m.(App)
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func amt(t *testing.T, a App, category string) int64 {
	t.Helper()
	v, ok := a.snap.Budget.Amount(category)
	if !ok {
		t.Fatalf("category %q missing from budget", category)
	}
	return v
}

func TestApp_SliderEditKeepsTotalWithinIncome(t *testing.T) {
	a := newTestApp(t)

	before := amt(t, a, "rent")
	a = press(t, a, "j", "l", "l", "l") // select rent, bump three steps

	if got := amt(t, a, "rent"); got <= before {
		t.Fatalf("rent = %d after raising, want > %d", got, before)
	}
	if total := a.snap.Budget.Total(); total > a.snap.Income {
		t.Fatalf("total %d exceeds income %d", total, a.snap.Income)
	}
	for _, al := range a.snap.Budget {
		if al.Amount < 0 {
			t.Fatalf("%s went negative: %d", al.Category, al.Amount)
		}
	}
}

func TestApp_IncomeEditRescalesCategories(t *testing.T) {
	a := newTestApp(t)

	// Cursor starts on the income row.
	a = press(t, a, "h", "h")

	if a.snap.Income >= config.DefaultConfig().General.Income {
		t.Fatalf("income = %d, want lower than default", a.snap.Income)
	}
	if total := a.snap.Budget.Total(); total > a.snap.Income {
		t.Fatalf("total %d exceeds income %d after income drop", total, a.snap.Income)
	}
}

func TestApp_DirectAmountEntry(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "j", "enter") // edit rent
	if !a.budgetTab.editing {
		t.Fatal("enter did not start the inline editor")
	}
	a.budgetTab.input.SetValue("2000")
	a = press(t, a, "enter")

	if a.budgetTab.editing {
		t.Fatal("editor still active after submit")
	}
	if got := amt(t, a, "rent"); got != 2000 {
		t.Fatalf("rent = %d, want 2000", got)
	}
	if total := a.snap.Budget.Total(); total > a.snap.Income {
		t.Fatalf("total %d exceeds income %d", total, a.snap.Income)
	}
}

func TestApp_RejectsBadAmountEntry(t *testing.T) {
	a := newTestApp(t)

	before := amt(t, a, "rent")
	a = press(t, a, "j", "enter")
	a.budgetTab.input.SetValue("lots")
	a = press(t, a, "enter")

	if got := amt(t, a, "rent"); got != before {
		t.Fatalf("rent = %d, want unchanged %d", got, before)
	}
	if a.budgetTab.note == "" {
		t.Fatal("bad input produced no note")
	}
}

func TestApp_TabNavigation(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "a")
	if a.activeTab != tabIdxAdvisor {
		t.Fatalf("activeTab = %d, want advisor", a.activeTab)
	}
	a = press(t, a, "y")
	if a.activeTab != tabIdxHistory {
		t.Fatalf("activeTab = %d, want history", a.activeTab)
	}
	a = press(t, a, "x", "b")
	if a.activeTab != tabIdxBudget {
		t.Fatalf("activeTab = %d, want budget", a.activeTab)
	}
}

func TestApp_AdviceMsgAppendsHistory(t *testing.T) {
	a := newTestApp(t)

	m, _ := a.Update(adviceMsg{
		question: "How do I save more?",
		answer:   advisor.Answer{Text: "Spend less.", Source: advisor.SourceCatalog},
	})
	a = m.(App)

	if a.history.Len() != 1 {
		t.Fatalf("history length = %d, want 1", a.history.Len())
	}
	last := a.history.Last(1)[0]
	if last.Question != "How do I save more?" || last.Answer != "Spend less." {
		t.Fatalf("history entry = %+v", last)
	}
	if a.advTab.answer.Text != "Spend less." {
		t.Fatalf("answer text = %q", a.advTab.answer.Text)
	}
}

func TestApp_AdviceErrorSkipsHistory(t *testing.T) {
	a := newTestApp(t)

	m, _ := a.Update(adviceMsg{
		question: "anything",
		err:      advisor.ErrGenerationUnavailable,
	})
	a = m.(App)

	if a.history.Len() != 0 {
		t.Fatalf("history length = %d, want 0", a.history.Len())
	}
	if a.advTab.errText == "" {
		t.Fatal("error message not surfaced")
	}
}

func TestApp_ViewRendersWithoutData(t *testing.T) {
	a := newTestApp(t)

	for _, tab := range []int{tabIdxBudget, tabIdxAdvisor, tabIdxHistory, tabIdxSettings} {
		a.activeTab = tab
		if out := a.View(); out == "" {
			t.Fatalf("tab %d rendered empty", tab)
		}
	}
}
