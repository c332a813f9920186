package services

import (
	"context"
	"fmt"

	"github.com/docent-labs/docent/internal/core/domain"
	"github.com/docent-labs/docent/internal/core/ports/driven"
	"github.com/docent-labs/docent/internal/logger"
)

// Embedder batches embedding requests against the embedding service.
// Large inputs are cut into fixed-size batches so single requests stay
// within upstream size limits regardless of document size.
type Embedder struct {
	service   driven.EmbeddingService
	batchSize int
}

// NewEmbedder creates an embedding gateway. A non-positive batchSize
// falls back to the default.
func NewEmbedder(service driven.EmbeddingService, batchSize int) *Embedder {
	if batchSize <= 0 {
		batchSize = domain.DefaultBatchSize
	}
	return &Embedder{
		service:   service,
		batchSize: batchSize,
	}
}

// EmbedQuery embeds a single query string.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if e.service == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	vector, err := e.service.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return vector, nil
}

// EmbedAll embeds texts in input order, batch by batch. onProgress,
// when non-nil, receives the completed fraction after each batch;
// values are non-decreasing and end at 1.0. Any batch failure aborts
// the whole call with no partial result.
func (e *Embedder) EmbedAll(ctx context.Context, texts []string, onProgress func(float64)) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	if e.service == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	total := len(texts)
	logger.Debug("Embedding %d texts in batches of %d", total, e.batchSize)

	vectors := make([][]float32, 0, total)
	for start := 0; start < total; start += e.batchSize {
		end := start + e.batchSize
		if end > total {
			end = total
		}

		batch, err := e.service.EmbedBatch(ctx, texts[start:end])
		if err != nil {
			logger.Warn("Embedding batch %d-%d failed: %v", start, end, err)
			return nil, fmt.Errorf("embed batch %d-%d: %w", start, end, err)
		}
		if len(batch) != end-start {
			return nil, fmt.Errorf("embedding service returned %d vectors for %d texts", len(batch), end-start)
		}

		vectors = append(vectors, batch...)
		if onProgress != nil {
			onProgress(float64(end) / float64(total))
		}
	}

	logger.Debug("Embedded %d texts", total)
	return vectors, nil
}
