package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List indexed documents",
	Long:  `Lists the source files currently in the vector index.`,
	RunE:  runDocumentsList,
}

var documentsRemoveCmd = &cobra.Command{
	Use:   "remove [file]",
	Short: "Remove a document from the index",
	Long:  `Deletes every indexed chunk of the given source file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsRemove,
}

func init() {
	documentsCmd.AddCommand(documentsRemoveCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	docs, err := indexService.ListDocuments(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents indexed. Run 'docent ingest <file.pdf>' to add one.")
		return nil
	}

	cmd.Println("Indexed documents:")
	cmd.Println()
	for _, doc := range docs {
		cmd.Printf("  %s\n", doc)
	}
	cmd.Println()
	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentsRemove(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	sourceFile := args[0]
	if err := indexService.DeleteDocument(cmd.Context(), sourceFile); err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}

	cmd.Printf("Removed document: %s\n", sourceFile)
	return nil
}
