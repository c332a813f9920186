package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var askTopK int

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the indexed documents",
	Long: `Retrieves the chunks closest to the question and asks the
configured LLM for an answer grounded in them, with citations.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of context chunks (0 = configured default)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("ask is not available: AI services are not configured")
	}

	answer, err := answerService.Answer(cmd.Context(), args[0], askTopK)
	if err != nil {
		return fmt.Errorf("answering failed: %w", err)
	}

	cmd.Println(renderAnswerPanel("Answer", answer))
	return nil
}
