// Package domain defines the core business entities for Docent.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Page: Extracted text for a single document page
//   - Chunk: A bounded, overlapping slice of page text
//   - SearchResult: A ranked similarity hit
//   - ChatMessage / ToolCall / Completion: Conversation types
//   - AgentKind: Query intent categories
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
