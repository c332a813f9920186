package driven

import (
	"context"

	"github.com/docent-labs/docent/internal/core/domain"
)

// ToolProvider exposes external tools to the agent loop.
// This is an optional service - when nil, agents run without tools.
//
// The canonical implementation aggregates one or more MCP servers, but
// the loop only sees named tools with JSON schemas.
type ToolProvider interface {
	// Tools returns the declarations for every available tool.
	// The slice is stable for the provider's lifetime.
	Tools() []domain.ToolSpec

	// Invoke calls the named tool with already-parsed arguments and
	// returns its textual result. Unknown names and tool failures are
	// returned as errors; the caller decides how they enter the
	// conversation.
	Invoke(ctx context.Context, name string, args map[string]any) (string, error)

	// Close releases every underlying tool connection.
	Close() error
}
