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

// Ensure Answer implements the interfaces.
var (
	_ driving.AnswerService   = (*Answer)(nil)
	_ driven.PromptStoreAware = (*Answer)(nil)
)

// NoResultsNotice is returned when nothing relevant is indexed.
// The model is not called in that case.
const NoResultsNotice = "No relevant documents found to answer your question."

// answerTemperature keeps generated answers close to the retrieved
// context without being fully deterministic.
const answerTemperature = 0.3

// defaultAnswerPrompt is the fallback persona when no PromptStore is
// configured.
const defaultAnswerPrompt = `You are a helpful research assistant. Answer the question using ONLY the provided context from the user's documents.

Rules:
1. Ground every claim in the context; do not invent facts.
2. Cite sources inline as [Source N] where N matches the context block.
3. If the context does not contain the answer, say so plainly.
4. Be concise and direct.`

// Answer generates grounded answers from indexed documents.
type Answer struct {
	index       driving.IndexService
	llm         driven.LLMService
	promptStore driven.PromptStore
}

// NewAnswer creates an answer service.
func NewAnswer(index driving.IndexService, llm driven.LLMService) *Answer {
	return &Answer{
		index: index,
		llm:   llm,
	}
}

// SetPromptStore sets the prompt store for loading the customisable
// answer persona. If not set, the built-in prompt is used.
func (s *Answer) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// Answer retrieves the topK closest chunks and asks the model for an
// answer grounded in them. topK <= 0 selects the configured default.
// The returned text carries a deduplicated source list drawn from the
// retrieved chunks, not re-parsed from the model output.
func (s *Answer) Answer(ctx context.Context, question string, topK int) (string, error) {
	if s.llm == nil {
		return "", domain.ErrLLMUnavailable
	}

	logger.Section("Answer Generation")
	logger.Debug("Question: %q, topK: %d", question, topK)

	results, err := s.index.Search(ctx, question, topK)
	if err != nil {
		return "", fmt.Errorf("retrieve context: %w", err)
	}
	if len(results) == 0 {
		logger.Debug("No results, skipping model call")
		return NoResultsNotice, nil
	}

	persona := s.loadPrompt(driven.PromptAnswer, defaultAnswerPrompt)
	messages := []domain.ChatMessage{
		domain.SystemMessage(persona),
		domain.UserMessage(buildQuestionMessage(question, results)),
	}

	completion, err := s.llm.Complete(ctx, messages, nil, driven.CompleteOptions{
		Temperature: answerTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	return completion.Content + formatSources(results), nil
}

// buildQuestionMessage assembles the numbered context block and the
// question into a single user message.
func buildQuestionMessage(question string, results []domain.SearchResult) string {
	var b strings.Builder
	b.WriteString("Context:\n\n")
	for i, result := range results {
		fmt.Fprintf(&b, "[Source %d: %s, Page %d]\n%s",
			i+1, result.Metadata.SourceFile, result.Metadata.PageNumber, result.Text)
		b.WriteString("\n\n")
	}
	b.WriteString("Question: ")
	b.WriteString(question)
	return b.String()
}

// formatSources renders the retrieved chunks as a deduplicated,
// order-preserving citation footer.
func formatSources(results []domain.SearchResult) string {
	seen := make(map[string]bool, len(results))
	citations := make([]string, 0, len(results))
	for _, result := range results {
		citation := result.Metadata.Citation()
		if !seen[citation] {
			seen[citation] = true
			citations = append(citations, citation)
		}
	}
	return "\n\n**Sources:** " + strings.Join(citations, ", ")
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (s *Answer) loadPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
