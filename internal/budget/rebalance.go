// Package budget implements proportional rebalancing of category
// allocations against a fixed monthly income. All arithmetic is integer;
// fractional units are floored, never rounded.
package budget

import (
	"errors"
	"fmt"

	"budgetwise/internal/model"
)

var (
	// ErrNegativeAmount indicates an attempt to set a category below zero.
	ErrNegativeAmount = errors.New("budget: negative amount")
	// ErrUnknownCategory indicates an edit to a category not in the budget.
	ErrUnknownCategory = errors.New("budget: unknown category")
)

// Share declares a category's default percentage of income.
type Share struct {
	Category string
	Percent  int64
}

// DefaultSplit is the initial allocation applied at session start.
var DefaultSplit = []Share{
	{"rent", 30},
	{"food", 25},
	{"transport", 15},
	{"entertainment", 10},
	{"savings", 20},
}

// Initialize builds a budget from a percentage split of income. Each
// amount is floored; if the split percentages overshoot income the result
// is passed through Normalize.
func Initialize(income int64, split []Share) model.Budget {
	b := make(model.Budget, 0, len(split))
	for _, s := range split {
		b = append(b, model.Allocation{Category: s.Category, Amount: income * s.Percent / 100})
	}
	if b.Total() > income {
		b = Normalize(b, income)
	}
	return b
}

// ApplyEdit sets one category to a new value and returns the rebalanced
// budget. Any overflow beyond income is removed from the other categories
// proportionally to their share of the others' sum, floored at zero. When
// every other category is already at zero the edit stands as given and the
// overflow persists until income or the category changes again.
func ApplyEdit(b model.Budget, income int64, category string, value int64) (model.Budget, error) {
	if value < 0 {
		return nil, fmt.Errorf("%w: %s = %d", ErrNegativeAmount, category, value)
	}
	idx := b.Index(category)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	out := b.Clone()
	out[idx].Amount = value

	overflow := out.Total() - income
	if overflow <= 0 {
		return out, nil
	}

	var othersTotal int64
	for i, a := range out {
		if i != idx {
			othersTotal += a.Amount
		}
	}
	if othersTotal == 0 {
		return out, nil
	}

	for i := range out {
		if i == idx {
			continue
		}
		out[i].Amount -= overflow * out[i].Amount / othersTotal
		if out[i].Amount < 0 {
			out[i].Amount = 0
		}
	}
	return out, nil
}

// Normalize shrinks every category proportionally to its share of the
// total until the budget fits the income. A no-op when the budget already
// fits. Floor division can leave the sum short of income, and at most
// n-1 units over it; it never produces a negative amount.
func Normalize(b model.Budget, income int64) model.Budget {
	out := b.Clone()
	total := out.Total()
	if total <= income || total == 0 {
		return out
	}
	if income < 0 {
		income = 0
	}

	overflow := total - income
	for i := range out {
		out[i].Amount -= out[i].Amount * overflow / total
		if out[i].Amount < 0 {
			out[i].Amount = 0
		}
	}
	return out
}
