// Package model defines domain types for budgetwise budgets and advice.
package model

// Allocation is one named bucket of the budget with its monthly amount
// in whole currency units.
type Allocation struct {
	Category string
	Amount   int64
}

// Budget is an ordered list of category allocations. Order is fixed at
// creation and gives deterministic iteration for rebalancing and display.
type Budget []Allocation

// Total returns the sum of all allocated amounts.
func (b Budget) Total() int64 {
	var total int64
	for _, a := range b {
		total += a.Amount
	}
	return total
}

// Amount returns the allocation for a category and whether it exists.
func (b Budget) Amount(category string) (int64, bool) {
	for _, a := range b {
		if a.Category == category {
			return a.Amount, true
		}
	}
	return 0, false
}

// Index returns the position of a category, or -1 if absent.
func (b Budget) Index(category string) int {
	for i, a := range b {
		if a.Category == category {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of the budget.
func (b Budget) Clone() Budget {
	out := make(Budget, len(b))
	copy(out, b)
	return out
}

// Categories returns the category names in budget order.
func (b Budget) Categories() []string {
	names := make([]string, len(b))
	for i, a := range b {
		names[i] = a.Category
	}
	return names
}

// Snapshot pairs an income with its budget. Mutating operations return a
// new snapshot; the UI layer re-renders from whatever it is handed.
type Snapshot struct {
	Income int64
	Budget Budget
}

// Unallocated returns income not assigned to any category. Negative when
// the budget overflows the income.
func (s Snapshot) Unallocated() int64 {
	return s.Income - s.Budget.Total()
}
