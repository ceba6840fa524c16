package cmd

import (
	"fmt"

	"budgetwise/internal/advisor"
	"budgetwise/internal/cli"

	"github.com/spf13/cobra"
)

var flagExtra string

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Get savings advice for your whole budget",
	RunE:  runAdvise,
}

func init() {
	adviseCmd.Flags().StringVarP(&flagExtra, "extra", "e", "", "Extra context, e.g. \"EMI of 8000, two kids in school\"")
	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snap, err := buildSnapshot(cfg)
	if err != nil {
		return err
	}

	fmt.Print(cli.RenderPlan(snap, cfg.General.Currency))
	fmt.Println()

	adv, ready := buildAdvisor(cmd.Context(), cfg)
	if !ready {
		fmt.Println("  " + advisor.FormatError(advisor.ErrGenerationUnavailable))
		return nil
	}

	if !flagQuiet {
		fmt.Println("  Asking Gemini...")
		fmt.Println()
	}

	text, err := adv.AnalyzeBudget(cmd.Context(), snap, flagExtra)
	if err != nil {
		fmt.Println("  " + advisor.FormatError(err))
		return nil
	}

	fmt.Println(indent(text))
	fmt.Println()
	return nil
}
