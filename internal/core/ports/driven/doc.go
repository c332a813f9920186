// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for retrieval to function:
//
//   - EmbeddingService: Generates vector embeddings
//   - LLMService: Chat completions with tool calling
//   - VectorStore: Vector persistence and similarity search
//   - Extractor: Page-wise document text extraction
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ToolProvider: External tools for the agent loop. Without it,
//     agents answer from model knowledge and retrieval alone.
//   - PromptStore: Prompt overrides. Without it, built-in prompts are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
