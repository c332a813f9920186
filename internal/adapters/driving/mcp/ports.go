package mcp

import (
	"github.com/docent-labs/docent/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Index provides direct access to the vector index.
	Index driving.IndexService

	// Answer generates grounded answers from the index.
	Answer driving.AnswerService

	// Ingest loads new documents. Optional; when nil the ingest tool
	// reports an error instead of being hidden.
	Ingest driving.IngestService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Index == nil {
		return ErrMissingIndexService
	}
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	return nil
}
