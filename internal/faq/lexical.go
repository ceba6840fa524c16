package faq

import (
	"context"
	"math"
	"strings"
	"unicode"
)

// Lexical matches queries against the catalog by token overlap instead of
// embeddings. It is the fallback when no embedding provider is configured:
// verbatim and near-verbatim catalog questions still hit, paraphrases
// usually miss. Scores are cosine similarity over binary bags of words, so
// the same threshold applies.
type Lexical struct {
	entries   []Entry
	tokens    []map[string]struct{}
	Threshold float64
}

// NewLexical creates a lexical matcher over the given catalog.
func NewLexical(entries []Entry) *Lexical {
	toks := make([]map[string]struct{}, len(entries))
	for i, e := range entries {
		toks[i] = tokenSet(e.Question)
	}
	return &Lexical{
		entries:   entries,
		tokens:    toks,
		Threshold: DefaultThreshold,
	}
}

// Match returns the best-overlapping catalog entry if it clears the
// threshold. Same contract as Matcher.Match; it never fails.
func (m *Lexical) Match(_ context.Context, query string) (Match, error) {
	qt := tokenSet(query)
	if len(qt) == 0 {
		return Match{}, nil
	}

	best := -1
	bestScore := math.Inf(-1)
	for i, ct := range m.tokens {
		// Strict greater-than keeps the first entry on identical scores.
		if s := overlap(qt, ct); s > bestScore {
			best = i
			bestScore = s
		}
	}
	if best < 0 {
		return Match{}, nil
	}

	result := Match{Score: bestScore}
	if bestScore > m.Threshold {
		result.Question = m.entries[best].Question
		result.Answer = m.entries[best].Answer
		result.Matched = true
	}
	return result, nil
}

// overlap is cosine similarity over two binary bags of words.
func overlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	common := 0
	for t := range a {
		if _, ok := b[t]; ok {
			common++
		}
	}
	return float64(common) / math.Sqrt(float64(len(a))*float64(len(b)))
}

// tokenSet lowercases and splits on anything that is not a letter or
// digit, deduplicating tokens.
func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}) {
		set[tok] = struct{}{}
	}
	return set
}
