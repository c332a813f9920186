package driven

import (
	"context"

	"github.com/docent-labs/docent/internal/core/domain"
)

// VectorStore persists embeddings and serves similarity queries.
//
// Implementations must rank query results ascending by cosine distance,
// breaking exact ties by ascending record ID so result order is
// deterministic across runs and across implementations.
type VectorStore interface {
	// Upsert stores the given records. A record whose ID already exists
	// replaces the stored one.
	Upsert(ctx context.Context, records []VectorRecord) error

	// Query finds the k nearest stored vectors to the query embedding.
	// An empty store yields an empty slice, not an error.
	Query(ctx context.Context, embedding []float32, k int) ([]VectorMatch, error)

	// DeleteBySource removes every record whose metadata names the
	// given source file. Removing an unknown source is a no-op.
	DeleteBySource(ctx context.Context, sourceFile string) error

	// ListSources returns the distinct source files present in the
	// store, sorted ascending.
	ListSources(ctx context.Context) ([]string, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}

// VectorRecord is a stored embedding with its chunk payload.
type VectorRecord struct {
	// ID uniquely identifies the record within the store.
	// Derived from (source file, chunk index), so re-ingesting a
	// document overwrites its previous vectors.
	ID string

	// Embedding is the vector representation of Document.
	Embedding []float32

	// Document is the chunk text.
	Document string

	// Metadata identifies the chunk's origin.
	Metadata domain.ChunkMetadata
}

// VectorMatch is a similarity query hit.
type VectorMatch struct {
	// ID is the matched record's identifier.
	ID string

	// Document is the matched chunk text.
	Document string

	// Metadata identifies the chunk's origin.
	Metadata domain.ChunkMetadata

	// Distance is the cosine distance to the query (lower is closer).
	Distance float64
}
