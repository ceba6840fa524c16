package cmd

import (
	"fmt"
	"strings"

	"budgetwise/internal/advisor"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a budgeting question",
	Long: "Answers from the built-in FAQ when the question is close enough to a\n" +
		"known one, otherwise asks Gemini with your budget as context.",
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snap, err := buildSnapshot(cfg)
	if err != nil {
		return err
	}

	adv, _ := buildAdvisor(cmd.Context(), cfg)

	ans, err := adv.AnswerQuestion(cmd.Context(), snap, question)
	if err != nil {
		fmt.Println()
		fmt.Println("  " + advisor.FormatError(err))
		return nil
	}

	fmt.Println()
	fmt.Println(indent(ans.Text))
	fmt.Println()
	fmt.Printf("  source: %s\n", ans.Source)
	if ans.Notice != "" {
		fmt.Printf("  note: %s\n", ans.Notice)
	}
	return nil
}

func indent(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
