package model

import "time"

// HistoryEntry is one asked question and the answer it received.
type HistoryEntry struct {
	Question string
	Answer   string
	Source   string // where the answer came from, for display
	AskedAt  time.Time
}

// History is the session's append-only question log, most-recent-last.
// It lives only for the process lifetime; nothing is persisted.
type History struct {
	entries []HistoryEntry
}

// Add appends an entry to the log.
func (h *History) Add(e HistoryEntry) {
	h.entries = append(h.entries, e)
}

// Len returns the number of logged entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Last returns up to n most recent entries, oldest first.
func (h *History) Last(n int) []HistoryEntry {
	if n <= 0 || len(h.entries) == 0 {
		return nil
	}
	if n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]HistoryEntry, n)
	copy(out, h.entries[len(h.entries)-n:])
	return out
}
