package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Configuration errors. These are fatal at startup: a process
	// with invalid configuration must not start serving requests.

	// ErrMissingAPIKey indicates a cloud provider is selected but no
	// API key was supplied via config or environment.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidProvider indicates an unknown AI provider name.
	ErrInvalidProvider = errors.New("invalid provider")

	// ErrInvalidChunking indicates chunk size/overlap values that can
	// never produce forward progress.
	ErrInvalidChunking = errors.New("invalid chunking configuration")

	// Service availability errors. Raised when an operation needs a
	// collaborator that was not wired in.

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Ingestion and semantic search are disabled.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrVectorStoreUnavailable indicates the vector store is not
	// configured.
	ErrVectorStoreUnavailable = errors.New("vector store unavailable")

	// Provider errors.

	// ErrRateLimited indicates the upstream API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrDimensionMismatch indicates a query vector whose length does
	// not match the stored embeddings.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
