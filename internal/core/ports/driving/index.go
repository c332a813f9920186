package driving

import (
	"context"

	"github.com/docent-labs/docent/internal/core/domain"
)

// IndexService provides direct access to the vector index.
type IndexService interface {
	// Add embeds the given chunks and stores them. Chunks that share
	// a (source file, chunk index) with stored vectors replace them.
	// onProgress follows the IngestService contract and may be nil.
	Add(ctx context.Context, chunks []domain.Chunk, onProgress func(float64)) error

	// Search returns the k closest chunks to the query, ascending by
	// distance. k <= 0 selects the configured default. An empty index
	// yields an empty slice.
	Search(ctx context.Context, query string, k int) ([]domain.SearchResult, error)

	// DeleteDocument removes every chunk of the given source file.
	DeleteDocument(ctx context.Context, sourceFile string) error

	// ListDocuments returns the distinct indexed source files, sorted.
	ListDocuments(ctx context.Context) ([]string, error)
}
