// Package gemini provides the generation and embedding providers backed
// by the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	generateTimeout = 30 * time.Second
	embedTimeout    = 15 * time.Second

	// DefaultGenerateModel is the text-generation model used unless
	// overridden in config.
	DefaultGenerateModel = "gemini-2.0-flash"
	// DefaultEmbedModel is the embedding model used unless overridden.
	DefaultEmbedModel = "gemini-embedding-001"
)

var (
	// ErrNoAPIKey indicates the client was constructed without a key.
	ErrNoAPIKey = errors.New("gemini: API key missing")
	// ErrEmptyResponse indicates the model returned no usable text.
	ErrEmptyResponse = errors.New("gemini: empty response")
)

// VectorCache stores embedding vectors keyed by model and text so catalog
// questions are not re-embedded on every process start. Implementations
// may be nil-safe no-ops.
type VectorCache interface {
	Get(model, text string) ([]float32, bool)
	Put(model, text string, vec []float32) error
}

// Config holds client construction parameters.
type Config struct {
	APIKey        string
	GenerateModel string
	EmbedModel    string
	Vectors       VectorCache // optional
}

// Client calls the Gemini API for text generation and embeddings. It
// satisfies advisor.Generator and faq.Embedder.
type Client struct {
	api           *genai.Client
	generateModel string
	embedModel    string
	vectors       VectorCache
}

// NewClient creates a Gemini client. Fails fast when the key is absent so
// callers can surface the configuration problem once at startup.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, ErrNoAPIKey
	}

	api, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: key})
	if err != nil {
		return nil, fmt.Errorf("gemini: creating client: %w", err)
	}

	c := &Client{
		api:           api,
		generateModel: cfg.GenerateModel,
		embedModel:    cfg.EmbedModel,
		vectors:       cfg.Vectors,
	}
	if c.generateModel == "" {
		c.generateModel = DefaultGenerateModel
	}
	if c.embedModel == "" {
		c.embedModel = DefaultEmbedModel
	}
	return c, nil
}

// Generate returns the model's text response for a prompt, verbatim.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := c.api.Models.GenerateContent(ctx, c.generateModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Embed returns the embedding vector for a text, consulting the vector
// cache first. Cache writes are best-effort.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if c.vectors != nil {
		if vec, ok := c.vectors.Get(c.embedModel, text); ok {
			return vec, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, embedTimeout)
	defer cancel()

	resp, err := c.api.Models.EmbedContent(ctx, c.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: embed: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, ErrEmptyResponse
	}

	vec := resp.Embeddings[0].Values
	if c.vectors != nil {
		_ = c.vectors.Put(c.embedModel, text, vec)
	}
	return vec, nil
}
