package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"budgetwise/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to budgetwise!")
	fmt.Println()

	// 1. Monthly income
	fmt.Println("  1. Monthly income")
	fmt.Printf("     Whole amount in %s, up to %d.\n", cfg.General.Currency, cfg.General.IncomeMax)
	fmt.Printf("     Current: %s%d\n", cfg.General.Currency, cfg.General.Income)
	fmt.Print("     > ")
	incomeIn, _ := reader.ReadString('\n')
	incomeIn = strings.TrimSpace(incomeIn)
	if incomeIn != "" {
		v, err := strconv.ParseInt(incomeIn, 10, 64)
		if err != nil || v < 0 {
			fmt.Println("     Not a whole non-negative number, keeping current income.")
		} else {
			if v > cfg.General.IncomeMax {
				v = cfg.General.IncomeMax
				fmt.Printf("     Capped at %d.\n", v)
			}
			cfg.General.Income = v
		}
	}
	fmt.Println()

	// 2. Gemini API key
	fmt.Println("  2. Gemini API key")
	fmt.Println("     For AI advice and semantic FAQ matching.")
	fmt.Println("     Get one at aistudio.google.com > Get API key")
	existing := config.GetAPIKey(cfg)
	if existing != "" {
		fmt.Printf("     Current: %s\n", maskAPIKey(existing))
	}
	fmt.Print("     > ")
	apiKey, _ := reader.ReadString('\n')
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Tokyo Night")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "tokyo-night"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `budgetwise setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
