package faq

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrEmbeddingUnavailable indicates the embedding provider failed; callers
// should treat the query as unmatched and surface a degradation notice.
var ErrEmbeddingUnavailable = errors.New("faq: embedding unavailable")

// DefaultThreshold is the minimum cosine similarity for a catalog hit.
const DefaultThreshold = 0.6

// Embedder produces a fixed-length vector for a text. Implementations must
// be deterministic for a given text within a process lifetime.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Match is the outcome of a catalog lookup.
type Match struct {
	Question string
	Answer   string
	Score    float64
	Matched  bool
}

// Matcher classifies free-text queries against the catalog by embedding
// similarity. Catalog embeddings are computed once and reused.
type Matcher struct {
	embedder  Embedder
	entries   []Entry
	vecs      [][]float32 // filled on first successful Match
	Threshold float64
}

// NewMatcher creates a matcher over the given catalog.
func NewMatcher(embedder Embedder, entries []Entry) *Matcher {
	return &Matcher{
		embedder:  embedder,
		entries:   entries,
		Threshold: DefaultThreshold,
	}
}

// Match embeds the query and returns the best-scoring catalog entry if it
// clears the threshold. Ties keep the earliest catalog entry. An embedding
// failure returns ErrEmbeddingUnavailable; the catalog cache is left
// unpopulated so a later call can retry.
func (m *Matcher) Match(ctx context.Context, query string) (Match, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Match{}, nil
	}

	if err := m.ensureCatalogVectors(ctx); err != nil {
		return Match{}, err
	}

	qv, err := m.embedder.Embed(ctx, query)
	if err != nil {
		return Match{}, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}

	best := -1
	bestScore := math.Inf(-1)
	for i, v := range m.vecs {
		// Strict greater-than keeps the first entry on identical scores.
		if s := cosine(qv, v); s > bestScore {
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

// ensureCatalogVectors embeds every catalog question once. On partial
// failure nothing is cached, so the whole set is retried next time.
func (m *Matcher) ensureCatalogVectors(ctx context.Context) error {
	if m.vecs != nil {
		return nil
	}

	vecs := make([][]float32, 0, len(m.entries))
	for _, e := range m.entries {
		v, err := m.embedder.Embed(ctx, e.Question)
		if err != nil {
			return fmt.Errorf("%w: catalog %q: %v", ErrEmbeddingUnavailable, e.Question, err)
		}
		vecs = append(vecs, v)
	}
	m.vecs = vecs
	return nil
}

// cosine returns the cosine similarity of two vectors, 0 when either has
// zero magnitude or the lengths differ.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
