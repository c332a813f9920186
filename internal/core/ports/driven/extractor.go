package driven

import (
	"context"

	"github.com/docent-labs/docent/internal/core/domain"
)

// Extractor turns a source document into per-page plain text.
type Extractor interface {
	// Extract reads the document at path and returns its pages in
	// order. Pages with no extractable text are omitted.
	Extract(ctx context.Context, path string) ([]domain.Page, error)
}
