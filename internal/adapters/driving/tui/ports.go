// Package tui provides the interactive chat interface for docent.
// It is a driving adapter: the chat model talks to the core through
// the AgentService port and knows nothing about providers or storage.
package tui

import (
	"fmt"

	"github.com/docent-labs/docent/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the chat.
type Ports struct {
	// Agent answers chat messages through the tool-calling loop.
	Agent driving.AgentService
}

// Validate checks that all required ports are present.
func (p *Ports) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: ports is nil", ErrInvalidPorts)
	}
	if p.Agent == nil {
		return ErrMissingAgentService
	}
	return nil
}
