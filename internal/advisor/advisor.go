// Package advisor turns budget snapshots and user questions into advice,
// routing between the canned FAQ catalog and free-form generation.
package advisor

import (
	"context"
	"errors"
	"fmt"

	"budgetwise/internal/faq"
	"budgetwise/internal/model"
)

// ErrGenerationUnavailable indicates no generation provider is configured
// (missing API key). Catalog answers still work; rephrasing and open-ended
// advice do not.
var ErrGenerationUnavailable = errors.New("advisor: generation provider not configured")

// Generator produces free text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Matcher decides whether a question is answered from the canned catalog.
// Satisfied by faq.Matcher (embeddings) and faq.Lexical (keyless fallback).
type Matcher interface {
	Match(ctx context.Context, query string) (faq.Match, error)
}

// Source records where an answer came from.
type Source string

const (
	// SourceGenerated is open-ended advice from the generation provider.
	SourceGenerated Source = "generated"
	// SourceCatalog is a catalog answer rephrased by the provider.
	SourceCatalog Source = "catalog"
	// SourceCatalogRaw is a catalog answer returned verbatim because
	// rephrasing was unavailable or failed.
	SourceCatalogRaw Source = "catalog (verbatim)"
)

// Answer is the outcome of a question, with any degradation notice the UI
// should surface alongside the text.
type Answer struct {
	Text   string
	Source Source
	Notice string
}

// Advisor orchestrates matching and generation. Both collaborators are
// optional: with a nil generator only verbatim catalog answers are served,
// and with a nil matcher every question goes straight to generation.
type Advisor struct {
	gen      Generator
	matcher  Matcher
	currency string
}

// New creates an advisor. currency is the symbol used in prompts.
func New(gen Generator, matcher Matcher, currency string) *Advisor {
	if currency == "" {
		currency = "₹"
	}
	return &Advisor{gen: gen, matcher: matcher, currency: currency}
}

// AnalyzeBudget requests open-ended advice for the whole snapshot. extra
// is optional free-text context (other expenses, constraints). The
// provider's response is returned verbatim.
func (a *Advisor) AnalyzeBudget(ctx context.Context, snap model.Snapshot, extra string) (string, error) {
	if a.gen == nil {
		return "", ErrGenerationUnavailable
	}
	text, err := a.gen.Generate(ctx, a.analyzePrompt(snap, extra))
	if err != nil {
		return "", fmt.Errorf("getting budget advice: %w", err)
	}
	return text, nil
}

// AnswerQuestion answers a free-text question. A confident catalog hit is
// rephrased by the generator (falling back to the verbatim canned answer
// if rephrasing is unavailable or fails); a miss escalates to open-ended
// generation seeded with the budget snapshot. An embedding outage is
// treated as a miss with a notice, never a crash.
func (a *Advisor) AnswerQuestion(ctx context.Context, snap model.Snapshot, question string) (Answer, error) {
	var notice string

	if a.matcher != nil {
		m, err := a.matcher.Match(ctx, question)
		switch {
		case errors.Is(err, faq.ErrEmbeddingUnavailable):
			notice = "FAQ matching unavailable, answering from your budget instead"
		case err != nil:
			return Answer{}, fmt.Errorf("matching question: %w", err)
		case m.Matched:
			return a.rephrase(ctx, question, m.Answer), nil
		}
	}

	if a.gen == nil {
		return Answer{}, ErrGenerationUnavailable
	}
	text, err := a.gen.Generate(ctx, a.questionPrompt(snap, question))
	if err != nil {
		return Answer{}, fmt.Errorf("getting budget advice: %w", err)
	}
	return Answer{Text: text, Source: SourceGenerated, Notice: notice}, nil
}

// rephrase rewrites a canned answer via the generator, degrading to the
// verbatim answer when that is not possible.
func (a *Advisor) rephrase(ctx context.Context, question, canned string) Answer {
	if a.gen == nil {
		return Answer{
			Text:   canned,
			Source: SourceCatalogRaw,
			Notice: "advice service not configured, showing the standard answer",
		}
	}
	text, err := a.gen.Generate(ctx, rephrasePrompt(question, canned))
	if err != nil {
		return Answer{
			Text:   canned,
			Source: SourceCatalogRaw,
			Notice: "advice service unavailable, showing the standard answer",
		}
	}
	return Answer{Text: text, Source: SourceCatalog}
}

// FormatError renders an advice failure as a user-visible one-liner. The
// session's budget and history stay valid; only the answer is lost.
func FormatError(err error) string {
	if errors.Is(err, ErrGenerationUnavailable) {
		return "AI advice is not configured. Set GEMINI_API_KEY (or add it in Settings) to enable it."
	}
	return fmt.Sprintf("Could not get AI advice: %v", err)
}
