package driven

import (
	"context"

	"github.com/docent-labs/docent/internal/core/domain"
)

// LLMService provides chat completions, optionally with tool calling.
//
// Implementations may include:
//   - OpenAI (GPT-4o family)
//   - Anthropic (Claude)
//   - Ollama (local models)
type LLMService interface {
	// Complete runs one model turn over the conversation. When tools is
	// non-empty the model may answer with tool calls instead of (or in
	// addition to) text; the caller drives the resulting loop.
	Complete(ctx context.Context, messages []domain.ChatMessage, tools []domain.ToolSpec, opts CompleteOptions) (*domain.Completion, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// CompleteOptions configures a completion turn.
type CompleteOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	// Zero means the provider default.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	// Always transmitted: zero is a meaningful value, not "unset".
	Temperature float64
}
