// Package memory provides an in-memory vector store, useful for tests
// and throwaway sessions where persistence is not wanted.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/docent-labs/docent/internal/core/domain"
	"github.com/docent-labs/docent/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store is an in-memory implementation of driven.VectorStore.
type Store struct {
	mu      sync.RWMutex
	records map[string]driven.VectorRecord
}

// NewStore creates a new in-memory vector store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]driven.VectorRecord),
	}
}

// Upsert stores the given records, replacing any with the same ID.
func (s *Store) Upsert(_ context.Context, records []driven.VectorRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range records {
		s.records[record.ID] = record
	}
	return nil
}

// Query finds the k nearest stored vectors by cosine distance. Exact
// distance ties are broken by ascending ID so results are stable.
func (s *Store) Query(_ context.Context, embedding []float32, k int) ([]driven.VectorMatch, error) {
	if k <= 0 {
		return []driven.VectorMatch{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]driven.VectorMatch, 0, len(s.records))
	for _, record := range s.records {
		distance, err := domain.CosineDistance(embedding, record.Embedding)
		if err != nil {
			return nil, fmt.Errorf("comparing vector %s: %w", record.ID, err)
		}
		matches = append(matches, driven.VectorMatch{
			ID:       record.ID,
			Document: record.Document,
			Metadata: record.Metadata,
			Distance: distance,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].ID < matches[j].ID
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// DeleteBySource removes every record for the given source file.
func (s *Store) DeleteBySource(_ context.Context, sourceFile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, record := range s.records {
		if record.Metadata.SourceFile == sourceFile {
			delete(s.records, id)
		}
	}
	return nil
}

// ListSources returns the distinct source files present in the store.
func (s *Store) ListSources(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	sources := []string{}
	for _, record := range s.records {
		if !seen[record.Metadata.SourceFile] {
			seen[record.Metadata.SourceFile] = true
			sources = append(sources, record.Metadata.SourceFile)
		}
	}
	sort.Strings(sources)
	return sources, nil
}

// Count returns the number of stored records.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Close releases resources.
func (s *Store) Close() error {
	return nil
}
