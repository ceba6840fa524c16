package cmd

import (
	"fmt"

	"budgetwise/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Income:         %s%d\n", cfg.General.Currency, cfg.General.Income)
	fmt.Printf("    Income ceiling: %s%d\n", cfg.General.Currency, cfg.General.IncomeMax)
	fmt.Printf("    Currency:       %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Budget]")
	for _, s := range cfg.Split() {
		fmt.Printf("    %-15s %d%%\n", s.Category, s.Percent)
	}
	fmt.Println()

	fmt.Println("  [Gemini]")
	apiKey := config.GetAPIKey(cfg)
	if apiKey != "" {
		fmt.Printf("    API key: %s\n", maskAPIKey(apiKey))
	} else {
		fmt.Println("    API key: not configured")
	}
	if cfg.Gemini.GenerateModel != "" {
		fmt.Printf("    Model:   %s\n", cfg.Gemini.GenerateModel)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `budgetwise setup` to reconfigure.")
	return nil
}
