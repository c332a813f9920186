package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/docent-labs/docent/internal/core/domain"
	"github.com/docent-labs/docent/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEmbeddingService implements driven.EmbeddingService for testing.
// Embeddings are derived from the text so distinct texts get distinct
// vectors and repeated texts embed identically.
type mockEmbeddingService struct {
	embedErr   error
	batchCalls [][]string
	dims       int
}

var _ driven.EmbeddingService = (*mockEmbeddingService)(nil)

func newMockEmbeddingService() *mockEmbeddingService {
	return &mockEmbeddingService{dims: 4}
}

func (m *mockEmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := m.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (m *mockEmbeddingService) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	m.batchCalls = append(m.batchCalls, texts)
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = deterministicVector(text, m.dims)
	}
	return vectors, nil
}

func (m *mockEmbeddingService) Dimensions() int            { return m.dims }
func (m *mockEmbeddingService) ModelName() string          { return "mock-embed" }
func (m *mockEmbeddingService) Ping(context.Context) error { return nil }
func (m *mockEmbeddingService) Close() error               { return nil }

// deterministicVector hashes text into a unit-ish vector so cosine
// ranking in tests is stable.
func deterministicVector(text string, dims int) []float32 {
	vector := make([]float32, dims)
	for i, r := range text {
		vector[i%dims] += float32(r%13) + 1
	}
	return vector
}

// mockLLMService implements driven.LLMService with a scripted list of
// completions, recording every Complete call for assertions.
type mockLLMService struct {
	completions []*domain.Completion
	err         error

	calls []llmCall
}

type llmCall struct {
	messages []domain.ChatMessage
	tools    []domain.ToolSpec
	opts     driven.CompleteOptions
}

var _ driven.LLMService = (*mockLLMService)(nil)

func (m *mockLLMService) Complete(_ context.Context, messages []domain.ChatMessage, tools []domain.ToolSpec, opts driven.CompleteOptions) (*domain.Completion, error) {
	m.calls = append(m.calls, llmCall{
		messages: append([]domain.ChatMessage(nil), messages...),
		tools:    tools,
		opts:     opts,
	})
	if m.err != nil {
		return nil, m.err
	}
	if len(m.completions) == 0 {
		return &domain.Completion{Content: "out of scripted completions"}, nil
	}
	next := m.completions[0]
	m.completions = m.completions[1:]
	return next, nil
}

func (m *mockLLMService) ModelName() string          { return "mock-llm" }
func (m *mockLLMService) Ping(context.Context) error { return nil }
func (m *mockLLMService) Close() error               { return nil }

// mockToolProvider implements driven.ToolProvider for testing.
type mockToolProvider struct {
	specs   []domain.ToolSpec
	results map[string]string
	err     error

	invocations []toolInvocation
}

type toolInvocation struct {
	name string
	args map[string]any
}

var _ driven.ToolProvider = (*mockToolProvider)(nil)

func (m *mockToolProvider) Tools() []domain.ToolSpec { return m.specs }

func (m *mockToolProvider) Invoke(_ context.Context, name string, args map[string]any) (string, error) {
	m.invocations = append(m.invocations, toolInvocation{name: name, args: args})
	if m.err != nil {
		return "", m.err
	}
	result, ok := m.results[name]
	if !ok {
		return "", fmt.Errorf("%w: tool %q", domain.ErrNotFound, name)
	}
	return result, nil
}

func (m *mockToolProvider) Close() error { return nil }

// mockVectorStore implements driven.VectorStore in memory with the
// same ordering contract as the real adapters.
type mockVectorStore struct {
	records   map[string]driven.VectorRecord
	upsertErr error
	queryErr  error
	deleteErr error
}

var _ driven.VectorStore = (*mockVectorStore)(nil)

func newMockVectorStore() *mockVectorStore {
	return &mockVectorStore{records: make(map[string]driven.VectorRecord)}
}

func (m *mockVectorStore) Upsert(_ context.Context, records []driven.VectorRecord) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	for _, record := range records {
		m.records[record.ID] = record
	}
	return nil
}

func (m *mockVectorStore) Query(_ context.Context, embedding []float32, k int) ([]driven.VectorMatch, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	matches := make([]driven.VectorMatch, 0, len(m.records))
	for _, record := range m.records {
		matches = append(matches, driven.VectorMatch{
			ID:       record.ID,
			Document: record.Document,
			Metadata: record.Metadata,
			Distance: cosineDistance(embedding, record.Embedding),
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

func (m *mockVectorStore) DeleteBySource(_ context.Context, sourceFile string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for id, record := range m.records {
		if record.Metadata.SourceFile == sourceFile {
			delete(m.records, id)
		}
	}
	return nil
}

func (m *mockVectorStore) ListSources(context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var sources []string
	for _, record := range m.records {
		if !seen[record.Metadata.SourceFile] {
			seen[record.Metadata.SourceFile] = true
			sources = append(sources, record.Metadata.SourceFile)
		}
	}
	sort.Strings(sources)
	return sources, nil
}

func (m *mockVectorStore) Count(context.Context) (int, error) {
	return len(m.records), nil
}

func (m *mockVectorStore) Close() error { return nil }

func cosineDistance(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}

// mockExtractor implements driven.Extractor for testing.
type mockExtractor struct {
	pages []domain.Page
	err   error
}

var _ driven.Extractor = (*mockExtractor)(nil)

func (m *mockExtractor) Extract(context.Context, string) ([]domain.Page, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.pages, nil
}

// mockPromptStore implements driven.PromptStore for testing.
type mockPromptStore struct {
	prompts map[string]string
}

var _ driven.PromptStore = (*mockPromptStore)(nil)

func (m *mockPromptStore) Load(name string) (string, error) {
	prompt, ok := m.prompts[name]
	if !ok {
		return "", fmt.Errorf("prompt %q not found", name)
	}
	return prompt, nil
}

func (m *mockPromptStore) Reload() {}

// mockConfigStore implements driven.ConfigStore in memory.
type mockConfigStore struct {
	data map[string]any
}

var _ driven.ConfigStore = (*mockConfigStore)(nil)

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	value, ok := m.data[key]
	return value, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if value, ok := m.data[key].(string); ok {
		return value
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	switch value := m.data[key].(type) {
	case int:
		return value
	case int64:
		return int(value)
	default:
		return 0
	}
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }
func (m *mockConfigStore) Load() error { return nil }
func (m *mockConfigStore) Path() string {
	return "/tmp/mock-config.toml"
}

// envMap returns a getenv func backed by a map.
func envMap(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

// pageOfSentences builds page text long enough to split into several
// chunks.
func pageOfSentences(sentence string, repeats int) string {
	return strings.TrimSpace(strings.Repeat(sentence+" ", repeats))
}
