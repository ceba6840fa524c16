// Package cmd implements the budgetwise CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"budgetwise/internal/advisor"
	"budgetwise/internal/budget"
	"budgetwise/internal/cli"
	"budgetwise/internal/config"
	"budgetwise/internal/faq"
	"budgetwise/internal/gemini"
	"budgetwise/internal/model"
	"budgetwise/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagIncome  int64
	flagSet     []string
	flagNoCache bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "budgetwise",
	Short: "AI budgeting assistant in your terminal",
	Long: "Plan a monthly budget across categories, rebalance automatically when\n" +
		"you change an amount, and get savings advice from Gemini or the built-in FAQ.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	// Optional .env for GEMINI_API_KEY; missing file is fine.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	closeVectors()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runPlan
	rootCmd.PersistentFlags().Int64VarP(&flagIncome, "income", "i", 0, "Monthly income (overrides config)")
	rootCmd.PersistentFlags().StringArrayVarP(&flagSet, "set", "s", nil, "Override a category, e.g. --set rent=2000 (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the embedding cache")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig loads the config file and applies CLI overrides. Zero is a
// valid income, so the override applies whenever the flag was given.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if rootCmd.PersistentFlags().Changed("income") {
		if flagIncome < 0 {
			return cfg, fmt.Errorf("--income must be non-negative, got %d", flagIncome)
		}
		cfg.General.Income = flagIncome
		if cfg.General.Income > cfg.General.IncomeMax {
			cfg.General.Income = cfg.General.IncomeMax
		}
	}
	return cfg, nil
}

// buildSnapshot initializes the budget from the configured split and
// applies any --set overrides, rebalancing after each one.
func buildSnapshot(cfg config.Config) (model.Snapshot, error) {
	snap := model.Snapshot{
		Income: cfg.General.Income,
		Budget: budget.Initialize(cfg.General.Income, cfg.Split()),
	}

	for _, kv := range flagSet {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return snap, fmt.Errorf("invalid --set %q: want category=amount", kv)
		}
		cat := strings.TrimSpace(parts[0])
		amount, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return snap, fmt.Errorf("invalid --set %q: %w", kv, err)
		}
		snap.Budget, err = budget.ApplyEdit(snap.Budget, snap.Income, cat, amount)
		if err != nil {
			return snap, fmt.Errorf("applying --set %q: %w", kv, err)
		}
	}

	return snap, nil
}

// vectors is the shared embedding cache handle, opened lazily and reused
// across advisor rebuilds. Closed once in Execute.
var vectors *store.Cache

func openVectors() gemini.VectorCache {
	if flagNoCache {
		return nil
	}
	if vectors == nil {
		cache, err := store.Open(store.DefaultPath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Embedding cache unavailable: %v\n", err)
			}
			return nil
		}
		vectors = cache
	}
	return vectors
}

func closeVectors() {
	if vectors != nil {
		_ = vectors.Close()
		vectors = nil
	}
}

// buildAdvisor wires the Gemini client, embedding cache, FAQ matcher,
// and advisor together from config. Without an API key (second return
// false) catalog answers still work through lexical matching; only
// generation and semantic matching are off.
func buildAdvisor(ctx context.Context, cfg config.Config) (*advisor.Advisor, bool) {
	entries, err := faq.LoadCatalog(config.CatalogPath())
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Ignoring bad FAQ catalog: %v\n", err)
		}
		entries = faq.DefaultCatalog
	}

	key := config.GetAPIKey(cfg)
	if key == "" {
		return advisor.New(nil, faq.NewLexical(entries), cfg.General.Currency), false
	}

	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:        key,
		GenerateModel: cfg.Gemini.GenerateModel,
		EmbedModel:    cfg.Gemini.EmbedModel,
		Vectors:       openVectors(),
	})
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Gemini unavailable: %v\n", err)
		}
		return advisor.New(nil, faq.NewLexical(entries), cfg.General.Currency), false
	}

	matcher := faq.NewMatcher(client, entries)
	return advisor.New(client, matcher, cfg.General.Currency), true
}

func runPlan(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	snap, err := buildSnapshot(cfg)
	if err != nil {
		return err
	}

	fmt.Print(cli.RenderPlan(snap, cfg.General.Currency))
	return nil
}
