package cmd

import (
	"fmt"

	"budgetwise/internal/config"
	"budgetwise/internal/faq"

	"github.com/spf13/cobra"
)

var faqCmd = &cobra.Command{
	Use:   "faq",
	Short: "List the built-in FAQ catalog",
	Long: "Shows the questions the matcher recognizes and their canned answers.\n" +
		"Drop a faq.toml next to config.toml to replace the catalog.",
	RunE: runFAQ,
}

func init() {
	rootCmd.AddCommand(faqCmd)
}

func runFAQ(_ *cobra.Command, _ []string) error {
	entries, err := faq.LoadCatalog(config.CatalogPath())
	if err != nil {
		return fmt.Errorf("loading FAQ catalog: %w", err)
	}

	fmt.Println()
	for i, e := range entries {
		fmt.Printf("  %d. %s\n", i+1, e.Question)
		fmt.Println(indent("   " + e.Answer))
		fmt.Println()
	}
	fmt.Printf("  %d entries. Catalog override: %s\n", len(entries), config.CatalogPath())
	return nil
}
