package advisor

import (
	"fmt"
	"strings"

	"budgetwise/internal/model"
)

// analyzePrompt seeds the generator with the numeric budget snapshot.
func (a *Advisor) analyzePrompt(snap model.Snapshot, extra string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "My monthly income is %s%d. Here are my expenses: %s.\n",
		a.currency, snap.Income, a.expenseList(snap))
	if extra = strings.TrimSpace(extra); extra != "" {
		b.WriteString(extra)
		b.WriteString("\n")
	}
	b.WriteString("Analyze my budget and suggest practical ways to save money without affecting my lifestyle.\n")
	b.WriteString("Provide specific, actionable tips.")
	return b.String()
}

// questionPrompt seeds the generator with the snapshot plus the question
// that missed the catalog.
func (a *Advisor) questionPrompt(snap model.Snapshot, question string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "My monthly income is %s%d. Here are my expenses: %s.\n",
		a.currency, snap.Income, a.expenseList(snap))
	b.WriteString(strings.TrimSpace(question))
	b.WriteString("\nAnalyze my budget and suggest practical ways to save money without affecting my lifestyle.\n")
	b.WriteString("Provide specific, actionable tips.")
	return b.String()
}

// rephrasePrompt asks the generator to rewrite a canned catalog answer in
// context of the user's actual question.
func rephrasePrompt(question, canned string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A user asked: %q\n", strings.TrimSpace(question))
	fmt.Fprintf(&b, "Here's a basic answer: %q\n\n", canned)
	b.WriteString("Please rewrite it to be more helpful, detailed, and easy to understand.\n")
	b.WriteString("Use a friendly and practical tone, suitable for someone new to personal finance.")
	return b.String()
}

func (a *Advisor) expenseList(snap model.Snapshot) string {
	parts := make([]string, 0, len(snap.Budget))
	for _, alloc := range snap.Budget {
		parts = append(parts, fmt.Sprintf("%s: %s%d", alloc.Category, a.currency, alloc.Amount))
	}
	return strings.Join(parts, ", ")
}
