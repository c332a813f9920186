package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/docent-labs/docent/internal/core/domain"
	"github.com/docent-labs/docent/internal/core/ports/driven"
	"github.com/docent-labs/docent/internal/core/ports/driving"
	"github.com/docent-labs/docent/internal/logger"
)

// Ensure Index implements the interface.
var _ driving.IndexService = (*Index)(nil)

// Index provides vector indexing and similarity search over chunks.
type Index struct {
	store    driven.VectorStore
	embedder *Embedder
	topK     int
}

// NewIndex creates an index service. A non-positive topK falls back to
// the default.
func NewIndex(store driven.VectorStore, embedder *Embedder, topK int) *Index {
	if topK <= 0 {
		topK = domain.DefaultTopK
	}
	return &Index{
		store:    store,
		embedder: embedder,
		topK:     topK,
	}
}

// Add embeds the given chunks and upserts them into the store. Chunks
// sharing a (source file, chunk index) with stored vectors replace
// them. onProgress, when non-nil, receives the embedding completion
// fraction and may be called from the embedding gateway per batch.
func (s *Index) Add(ctx context.Context, chunks []domain.Chunk, onProgress func(float64)) error {
	if len(chunks) == 0 {
		return nil
	}
	if s.store == nil {
		return domain.ErrVectorStoreUnavailable
	}

	logger.Section("Index Add")
	logger.Debug("Embedding %d chunks", len(chunks))

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors, err := s.embedder.EmbedAll(ctx, texts, onProgress)
	if err != nil {
		return fmt.Errorf("embed chunks: %w", err)
	}

	records := make([]driven.VectorRecord, len(chunks))
	for i, chunk := range chunks {
		records[i] = driven.VectorRecord{
			ID:        chunk.VectorID(),
			Embedding: vectors[i],
			Document:  chunk.Text,
			Metadata:  chunk.Metadata(),
		}
	}

	if err := s.store.Upsert(ctx, records); err != nil {
		return fmt.Errorf("store vectors: %w", err)
	}

	logger.Debug("Stored %d vectors", len(records))
	return nil
}

// Search returns the k closest chunks to the query, ascending by
// distance. k <= 0 selects the configured default. An empty index
// yields an empty slice, not an error.
func (s *Index) Search(ctx context.Context, query string, k int) ([]domain.SearchResult, error) {
	if s.store == nil {
		return nil, domain.ErrVectorStoreUnavailable
	}
	if k <= 0 {
		k = s.topK
	}

	logger.Section("Index Search")
	logger.Debug("Query: %q, k: %d", query, k)

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.SearchResult{}, nil
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count vectors: %w", err)
	}
	if count == 0 {
		logger.Debug("Index is empty, returning no results")
		return []domain.SearchResult{}, nil
	}

	embedding, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	matches, err := s.store.Query(ctx, embedding, k)
	if err != nil {
		return nil, fmt.Errorf("query vectors: %w", err)
	}

	results := make([]domain.SearchResult, len(matches))
	for i, match := range matches {
		results[i] = domain.SearchResult{
			Text:     match.Document,
			Metadata: match.Metadata,
			Distance: match.Distance,
		}
	}

	logger.Debug("Found %d results", len(results))
	return results, nil
}

// DeleteDocument removes every vector whose metadata names the given
// source file. Deleting an unknown source is a no-op.
func (s *Index) DeleteDocument(ctx context.Context, sourceFile string) error {
	if s.store == nil {
		return domain.ErrVectorStoreUnavailable
	}

	logger.Debug("Deleting vectors for source %q", sourceFile)
	if err := s.store.DeleteBySource(ctx, sourceFile); err != nil {
		return fmt.Errorf("delete source %q: %w", sourceFile, err)
	}
	return nil
}

// ListDocuments returns the distinct indexed source files, sorted
// ascending. An empty index yields an empty slice.
func (s *Index) ListDocuments(ctx context.Context) ([]string, error) {
	if s.store == nil {
		return nil, domain.ErrVectorStoreUnavailable
	}

	sources, err := s.store.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}
