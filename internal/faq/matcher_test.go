package faq

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeEmbedder returns canned vectors per text and counts calls.
type fakeEmbedder struct {
	vecs  map[string][]float32
	calls int
	err   error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.vecs[text]
	if !ok {
		return []float32{0, 0, 1}, nil
	}
	return v, nil
}

func financeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{vecs: map[string][]float32{
		"how to save on groceries":        {1, 0, 0},
		"how much should i save monthly":  {0, 1, 0},
		"cheap grocery shopping tips":     {0.9, 0.1, 0},
		"what is the capital of france":   {0, 0, 1},
	}}
}

func testCatalog() []Entry {
	return []Entry{
		{Question: "how to save on groceries", Answer: "Meal plan and buy in bulk."},
		{Question: "how much should i save monthly", Answer: "Save at least 20% of income."},
	}
}

func TestMatch_IdenticalQuestionMatches(t *testing.T) {
	m := NewMatcher(financeEmbedder(), testCatalog())

	got, err := m.Match(context.Background(), "how to save on groceries")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if !got.Matched {
		t.Fatalf("identical question did not match (score %.3f)", got.Score)
	}
	if got.Answer != "Meal plan and buy in bulk." {
		t.Fatalf("Answer = %q", got.Answer)
	}
	if got.Score < 0.99 {
		t.Fatalf("identical question score = %.3f, want ~1.0", got.Score)
	}
}

func TestMatch_SimilarQuestionMatches(t *testing.T) {
	m := NewMatcher(financeEmbedder(), testCatalog())

	got, err := m.Match(context.Background(), "cheap grocery shopping tips")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if !got.Matched || got.Question != "how to save on groceries" {
		t.Fatalf("similar query matched = %v question = %q", got.Matched, got.Question)
	}
}

func TestMatch_UnrelatedQueryDoesNotMatch(t *testing.T) {
	m := NewMatcher(financeEmbedder(), testCatalog())

	got, err := m.Match(context.Background(), "what is the capital of france")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got.Matched {
		t.Fatalf("unrelated query matched %q with score %.3f", got.Question, got.Score)
	}
}

func TestMatch_ThresholdIsStrict(t *testing.T) {
	// cos((3,0,4), (1,0,0)) is exactly 3/5 = 0.6, which must not clear
	// the strictly-greater-than threshold.
	e := &fakeEmbedder{vecs: map[string][]float32{
		"how to save on groceries":       {1, 0, 0},
		"how much should i save monthly": {0, 1, 0},
		"borderline":                     {3, 0, 4},
	}}
	m := NewMatcher(e, testCatalog())

	got, err := m.Match(context.Background(), "borderline")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got.Matched {
		t.Fatalf("score %.6f at threshold matched, want no match", got.Score)
	}
}

func TestMatch_Deterministic(t *testing.T) {
	m := NewMatcher(financeEmbedder(), testCatalog())

	first, err := m.Match(context.Background(), "cheap grocery shopping tips")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := m.Match(context.Background(), "cheap grocery shopping tips")
		if err != nil {
			t.Fatalf("Match #%d: %v", i+2, err)
		}
		if again != first {
			t.Fatalf("Match #%d = %+v, first = %+v", i+2, again, first)
		}
	}
}

func TestMatch_TieBreakKeepsFirstEntry(t *testing.T) {
	// Both catalog questions embed identically; the first must win.
	e := &fakeEmbedder{vecs: map[string][]float32{
		"how to save on groceries":       {1, 0, 0},
		"how much should i save monthly": {1, 0, 0},
		"query":                          {1, 0, 0},
	}}
	m := NewMatcher(e, testCatalog())

	got, err := m.Match(context.Background(), "query")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got.Question != "how to save on groceries" {
		t.Fatalf("tie broke to %q, want first catalog entry", got.Question)
	}
}

func TestMatch_CatalogEmbeddedOnce(t *testing.T) {
	e := financeEmbedder()
	m := NewMatcher(e, testCatalog())

	for i := 0; i < 3; i++ {
		if _, err := m.Match(context.Background(), "how to save on groceries"); err != nil {
			t.Fatalf("Match #%d: %v", i+1, err)
		}
	}

	// 2 catalog embeds on the first call, then 1 query embed per call.
	if e.calls != 2+3 {
		t.Fatalf("embed calls = %d, want 5 (catalog cached after first call)", e.calls)
	}
}

func TestMatch_EmbeddingFailure(t *testing.T) {
	boom := errors.New("quota exceeded")
	e := &fakeEmbedder{err: boom}
	m := NewMatcher(e, testCatalog())

	_, err := m.Match(context.Background(), "anything")
	if !errors.Is(err, ErrEmbeddingUnavailable) {
		t.Fatalf("err = %v, want ErrEmbeddingUnavailable", err)
	}

	// Recover: the catalog cache must not be poisoned by the failure.
	e.err = nil
	e.vecs = financeEmbedder().vecs
	got, err := m.Match(context.Background(), "how to save on groceries")
	if err != nil {
		t.Fatalf("Match after recovery: %v", err)
	}
	if !got.Matched {
		t.Fatalf("no match after embedder recovered")
	}
}

func TestMatch_EmptyQuery(t *testing.T) {
	e := financeEmbedder()
	m := NewMatcher(e, testCatalog())

	got, err := m.Match(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got.Matched || e.calls != 0 {
		t.Fatalf("empty query: matched=%v embeds=%d, want no work done", got.Matched, e.calls)
	}
}

func TestLoadCatalog_MissingFileUsesDefault(t *testing.T) {
	entries, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(entries) != len(DefaultCatalog) {
		t.Fatalf("entries = %d, want default catalog (%d)", len(entries), len(DefaultCatalog))
	}
}

func TestLoadCatalog_ParsesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.toml")
	content := `
[[faq]]
question = "how to split rent with roommates"
answer = "Split proportionally to room size or income."

[[faq]]
question = "should i prepay my loan"
answer = "Compare the loan rate against what savings earn."
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	entries, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Question != "how to split rent with roommates" {
		t.Fatalf("first question = %q", entries[0].Question)
	}
}

func TestLoadCatalog_RejectsIncompleteEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.toml")
	content := `
[[faq]]
question = "only a question"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("LoadCatalog accepted an entry without an answer")
	}
}
