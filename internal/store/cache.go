// Package store provides a SQLite-backed cache for embedding vectors.
// Only derived vectors are stored, never budgets or question history.
package store

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache persists embedding vectors keyed by (model, text) so catalog
// questions survive process restarts without re-embedding.
type Cache struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant cache database path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetwise", "embeddings.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "budgetwise", "embeddings.db")
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached vector for (model, text). Any read problem is
// reported as a miss; the caller re-embeds and overwrites.
func (c *Cache) Get(model, text string) ([]float32, bool) {
	var dim int
	var blob []byte
	err := c.db.QueryRow(
		"SELECT dim, vector FROM embeddings WHERE model = ? AND text = ?",
		model, text,
	).Scan(&dim, &blob)
	if err != nil {
		return nil, false
	}

	vec, err := decodeVector(blob, dim)
	if err != nil {
		return nil, false
	}
	return vec, true
}

// Put stores a vector for (model, text), replacing any previous one.
func (c *Cache) Put(model, text string, vec []float32) error {
	if len(vec) == 0 {
		return fmt.Errorf("store: refusing to cache empty vector")
	}
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO embeddings (model, text, dim, vector, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		model, text, len(vec), encodeVector(vec), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Purge drops every vector for a model, for when the configured embedding
// model changes and old vectors are no longer comparable. An empty model
// drops everything.
func (c *Cache) Purge(model string) error {
	if model == "" {
		_, err := c.db.Exec("DELETE FROM embeddings")
		return err
	}
	_, err := c.db.Exec("DELETE FROM embeddings WHERE model = ?", model)
	return err
}

// Count returns the number of cached vectors.
func (c *Cache) Count() (int, error) {
	var n int
	err := c.db.QueryRow("SELECT COUNT(*) FROM embeddings").Scan(&n)
	return n, err
}

// encodeVector packs float32 values as little-endian bytes.
func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

func decodeVector(blob []byte, dim int) ([]float32, error) {
	if dim <= 0 || len(blob) != 4*dim {
		return nil, fmt.Errorf("store: vector blob is %d bytes, want %d", len(blob), 4*dim)
	}
	vec := make([]float32, dim)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[4*i:]))
	}
	return vec, nil
}
