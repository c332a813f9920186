package mcp

import (
	"context"

	"github.com/docent-labs/docent/internal/core/domain"
)

// --- Mock implementations ---

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	results   []domain.SearchResult
	documents []string
	lastQuery string
	lastK     int
	err       error
}

func (m *mockIndexService) Add(_ context.Context, _ []domain.Chunk, _ func(float64)) error {
	return m.err
}

func (m *mockIndexService) Search(_ context.Context, query string, k int) ([]domain.SearchResult, error) {
	m.lastQuery = query
	m.lastK = k
	return m.results, m.err
}

func (m *mockIndexService) DeleteDocument(_ context.Context, _ string) error {
	return m.err
}

func (m *mockIndexService) ListDocuments(_ context.Context) ([]string, error) {
	return m.documents, m.err
}

// mockAnswerService is a mock implementation of driving.AnswerService.
type mockAnswerService struct {
	answer       string
	lastQuestion string
	lastTopK     int
	err          error
}

func (m *mockAnswerService) Answer(_ context.Context, question string, topK int) (string, error) {
	m.lastQuestion = question
	m.lastTopK = topK
	return m.answer, m.err
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	chunks   int
	lastPath string
	err      error
}

func (m *mockIngestService) Ingest(_ context.Context, path string, _ func(float64)) (int, error) {
	m.lastPath = path
	return m.chunks, m.err
}
