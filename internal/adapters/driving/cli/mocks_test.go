package cli

import (
	"context"

	"github.com/docent-labs/docent/internal/core/domain"
	"github.com/docent-labs/docent/internal/core/ports/driven"
	"github.com/docent-labs/docent/internal/core/ports/driving"
)

// --- Mock implementations ---

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	results   []domain.SearchResult
	documents []string
	removed   []string
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

func (m *mockIndexService) DeleteDocument(_ context.Context, sourceFile string) error {
	m.removed = append(m.removed, sourceFile)
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

// mockAgentService is a mock implementation of driving.AgentService.
type mockAgentService struct {
	answer    string
	lastQuery string
	err       error
}

func (m *mockAgentService) Run(_ context.Context, query string) (string, error) {
	m.lastQuery = query
	return m.answer, m.err
}

// setupTestServices installs mock services into the command globals
// and returns a cleanup that restores the previous ones.
func setupTestServices() func() {
	prevIndex := indexService
	prevAnswer := answerService
	prevIngest := ingestService
	prevSettings := settingsService
	prevNewAgent := newAgent

	index := &mockIndexService{
		results: []domain.SearchResult{
			{
				Text: "chunk content",
				Metadata: domain.ChunkMetadata{
					SourceFile: "report.pdf",
					PageNumber: 2,
					ChunkIndex: 0,
				},
				Distance: 0.1,
			},
		},
		documents: []string{"report.pdf"},
	}
	indexService = index
	answerService = &mockAnswerService{answer: "A grounded answer [report.pdf (Page 2)]."}
	ingestService = &mockIngestService{chunks: 3}
	newAgent = func(_ driven.ToolProvider) driving.AgentService {
		return &mockAgentService{answer: "An agent answer."}
	}

	return func() {
		indexService = prevIndex
		answerService = prevAnswer
		ingestService = prevIngest
		settingsService = prevSettings
		newAgent = prevNewAgent
	}
}
