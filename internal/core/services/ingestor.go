package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/docent-labs/docent/internal/chunker"
	"github.com/docent-labs/docent/internal/core/domain"
	"github.com/docent-labs/docent/internal/core/ports/driven"
	"github.com/docent-labs/docent/internal/core/ports/driving"
	"github.com/docent-labs/docent/internal/logger"
)

// Ensure Ingestor implements the interface.
var _ driving.IngestService = (*Ingestor)(nil)

// Ingestor runs the ingestion pipeline: extract pages, cut them into
// chunks, embed and index them.
type Ingestor struct {
	extractor driven.Extractor
	splitter  *chunker.Splitter
	index     driving.IndexService
}

// NewIngestor creates an ingestion service.
func NewIngestor(extractor driven.Extractor, splitter *chunker.Splitter, index driving.IndexService) *Ingestor {
	return &Ingestor{
		extractor: extractor,
		splitter:  splitter,
		index:     index,
	}
}

// Ingest loads the document at path into the index and returns the
// number of chunks stored. The source file recorded on each chunk is
// the path's base name, so re-ingesting the same file from a different
// directory still overwrites its previous vectors.
func (s *Ingestor) Ingest(ctx context.Context, path string, onProgress func(float64)) (int, error) {
	logger.Section("Ingest")
	logger.Debug("Extracting %q", path)

	pages, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("extract %q: %w", path, err)
	}

	chunks := s.ChunkPages(filepath.Base(path), pages)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("%w: no extractable text in %q", domain.ErrInvalidInput, path)
	}
	logger.Debug("Cut %d pages into %d chunks", len(pages), len(chunks))

	if err := s.index.Add(ctx, chunks, onProgress); err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// ChunkPages cuts extracted pages into chunks. Chunk indices run
// sequentially across all pages in document order; the page number is
// recorded from the originating page.
func (s *Ingestor) ChunkPages(sourceFile string, pages []domain.Page) []domain.Chunk {
	var chunks []domain.Chunk
	index := 0
	for _, page := range pages {
		for _, text := range s.splitter.Split(page.Text) {
			chunks = append(chunks, domain.Chunk{
				Text:       text,
				PageNumber: page.Number,
				Index:      index,
				SourceFile: sourceFile,
			})
			index++
		}
	}
	return chunks
}
