package store

import (
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "embeddings.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_PutGetRoundtrip(t *testing.T) {
	c := openTestCache(t)

	vec := []float32{0.25, -1.5, 0, 3.125}
	if err := c.Put("embed-1", "how to save on groceries", vec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := c.Get("embed-1", "how to save on groceries")
	if !ok {
		t.Fatal("Get missed a stored vector")
	}
	if len(got) != len(vec) {
		t.Fatalf("dim = %d, want %d", len(got), len(vec))
	}
	for i := range vec {
		if got[i] != vec[i] {
			t.Fatalf("vec[%d] = %v, want %v", i, got[i], vec[i])
		}
	}
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := openTestCache(t)

	if _, ok := c.Get("embed-1", "never stored"); ok {
		t.Fatal("Get returned a hit for an unknown key")
	}
}

func TestCache_KeyedByModel(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("embed-1", "text", []float32{1}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, ok := c.Get("embed-2", "text"); ok {
		t.Fatal("vector leaked across embedding models")
	}
}

func TestCache_PutOverwrites(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("embed-1", "text", []float32{1, 2}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Put("embed-1", "text", []float32{3, 4, 5}); err != nil {
		t.Fatalf("Put (overwrite): %v", err)
	}

	got, ok := c.Get("embed-1", "text")
	if !ok || len(got) != 3 || got[0] != 3 {
		t.Fatalf("Get after overwrite = %v, %v", got, ok)
	}
}

func TestCache_Purge(t *testing.T) {
	c := openTestCache(t)

	_ = c.Put("old-model", "a", []float32{1})
	_ = c.Put("old-model", "b", []float32{2})
	_ = c.Put("new-model", "a", []float32{3})

	if err := c.Purge("old-model"); err != nil {
		t.Fatalf("Purge: %v", err)
	}

	n, err := c.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("Count after purge = %d, want 1", n)
	}
	if _, ok := c.Get("new-model", "a"); !ok {
		t.Fatal("Purge removed vectors for a different model")
	}

	if err := c.Purge(""); err != nil {
		t.Fatalf("Purge all: %v", err)
	}
	n, err = c.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Fatalf("Count after purge all = %d, want 0", n)
	}
}

func TestCache_RejectsEmptyVector(t *testing.T) {
	c := openTestCache(t)
	if err := c.Put("embed-1", "text", nil); err == nil {
		t.Fatal("Put accepted an empty vector")
	}
}
