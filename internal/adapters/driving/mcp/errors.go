// Package mcp provides an MCP (Model Context Protocol) server adapter for Docent.
// It enables AI assistants like Claude to search and question the local document index.
package mcp

import "errors"

// ErrMissingIndexService is returned when the index service is not provided.
var ErrMissingIndexService = errors.New("mcp: index service is required")

// ErrMissingAnswerService is returned when the answer service is not provided.
var ErrMissingAnswerService = errors.New("mcp: answer service is required")
