package driving

import "context"

// AgentService answers a query through a tool-calling loop.
// Implemented both by a single agent persona and by the router, which
// classifies the query and delegates to the matching persona.
type AgentService interface {
	// Run answers the query. Exhausting the iteration budget yields a
	// fixed notice as a normal result, not an error.
	Run(ctx context.Context, query string) (string, error)
}
