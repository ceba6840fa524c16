package model

import (
	"fmt"
	"testing"
)

func TestHistoryLast_ReturnsMostRecentOldestFirst(t *testing.T) {
	var h History
	for i := 1; i <= 7; i++ {
		h.Add(HistoryEntry{Question: fmt.Sprintf("q%d", i)})
	}

	last := h.Last(5)
	if len(last) != 5 {
		t.Fatalf("Last(5) returned %d entries, want 5", len(last))
	}
	if last[0].Question != "q3" || last[4].Question != "q7" {
		t.Fatalf("Last(5) = %q..%q, want q3..q7", last[0].Question, last[4].Question)
	}
}

func TestHistoryLast_FewerEntriesThanRequested(t *testing.T) {
	var h History
	h.Add(HistoryEntry{Question: "only"})

	last := h.Last(5)
	if len(last) != 1 || last[0].Question != "only" {
		t.Fatalf("Last(5) on single-entry history = %v", last)
	}
}

func TestHistoryLast_Empty(t *testing.T) {
	var h History
	if got := h.Last(5); got != nil {
		t.Fatalf("Last(5) on empty history = %v, want nil", got)
	}
}

func TestBudgetTotalAndUnallocated(t *testing.T) {
	b := Budget{{"rent", 1500}, {"food", 1250}, {"savings", 1000}}
	if b.Total() != 3750 {
		t.Fatalf("Total = %d, want 3750", b.Total())
	}

	s := Snapshot{Income: 5000, Budget: b}
	if s.Unallocated() != 1250 {
		t.Fatalf("Unallocated = %d, want 1250", s.Unallocated())
	}
}

func TestBudgetClone_Independent(t *testing.T) {
	b := Budget{{"rent", 100}}
	c := b.Clone()
	c[0].Amount = 999
	if amt, _ := b.Amount("rent"); amt != 100 {
		t.Fatalf("clone mutation leaked into original: rent = %d", amt)
	}
}
