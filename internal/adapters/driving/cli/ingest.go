package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file.pdf]",
	Short: "Ingest a PDF into the index",
	Long: `Extracts text from a PDF, splits it into overlapping chunks,
embeds the chunks and stores them in the local vector index.
Re-ingesting a file replaces its previous chunks.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest is not available: AI services are not configured")
	}

	path := args[0]
	cmd.Printf("Ingesting %s...\n", filepath.Base(path))

	// The progress bar only makes sense on a real terminal; piped
	// output gets the summary line alone.
	var onProgress func(float64)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
		onProgress = func(fraction float64) {
			fmt.Fprintf(cmd.OutOrStdout(), "\r%s", bar.ViewAs(fraction))
		}
	}

	chunks, err := ingestService.Ingest(cmd.Context(), path, onProgress)
	if onProgress != nil {
		cmd.Println()
	}
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Indexed %d chunks from %s\n", chunks, filepath.Base(path))
	return nil
}
