package cmd

import (
	"fmt"

	"budgetwise/internal/store"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Show the embedding cache",
	RunE:  runCacheInfo,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached embeddings",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheInfo(_ *cobra.Command, _ []string) error {
	cache, err := store.Open(store.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer cache.Close()

	n, err := cache.Count()
	if err != nil {
		return fmt.Errorf("reading cache: %w", err)
	}

	fmt.Printf("  Cache file: %s\n", store.DefaultPath())
	fmt.Printf("  Embeddings: %d\n", n)
	return nil
}

func runCacheClear(_ *cobra.Command, _ []string) error {
	cache, err := store.Open(store.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer cache.Close()

	// Empty model purges every row.
	if err := cache.Purge(""); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}

	fmt.Println("  Embedding cache cleared.")
	return nil
}
