package domain

import "strings"

// AgentKind categorises a user query so it can be routed to the agent
// persona best suited to answer it.
type AgentKind string

// Available agent kinds.
const (
	// AgentQA answers factual questions against the indexed corpus.
	AgentQA AgentKind = "qa"

	// AgentSummary produces document and topic summaries.
	AgentSummary AgentKind = "summary"

	// AgentComparison contrasts two or more subjects.
	AgentComparison AgentKind = "comparison"
)

// DefaultAgentKind is used when classification yields no known kind.
const DefaultAgentKind = AgentQA

// IsValid returns true if the agent kind is recognised.
func (k AgentKind) IsValid() bool {
	switch k {
	case AgentQA, AgentSummary, AgentComparison:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k AgentKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k AgentKind) Description() string {
	switch k {
	case AgentQA:
		return "Question answering"
	case AgentSummary:
		return "Summarisation"
	case AgentComparison:
		return "Comparison"
	default:
		return unknownDescription
	}
}

// ParseAgentKind maps a classifier reply to an AgentKind. The reply is
// trimmed and lowercased first; anything outside the known set falls
// back to DefaultAgentKind.
func ParseAgentKind(s string) AgentKind {
	k := AgentKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return DefaultAgentKind
	}
	return k
}

// AllAgentKinds returns all available agent kinds in routing order.
func AllAgentKinds() []AgentKind {
	return []AgentKind{
		AgentQA,
		AgentSummary,
		AgentComparison,
	}
}
