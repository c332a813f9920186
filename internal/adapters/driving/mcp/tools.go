package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchInput is the input schema for the search_documents tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to find document chunks"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// SearchOutput is the output schema for the search_documents tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Text       string  `json:"text"`
	SourceFile string  `json:"source_file"`
	PageNumber int     `json:"page_number"`
	Distance   float64 `json:"distance"`
	Citation   string  `json:"citation"`
}

// AskInput is the input schema for the ask_question tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the indexed documents"`
	TopK     int    `json:"top_k,omitempty" jsonschema:"how many chunks to retrieve as context (default 5)"`
}

// AskOutput is the output schema for the ask_question tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// IngestInput is the input schema for the ingest_pdf tool.
type IngestInput struct {
	Path string `json:"path" jsonschema:"filesystem path of the PDF to ingest"`
}

// IngestOutput is the output schema for the ingest_pdf tool.
type IngestOutput struct {
	Chunks int `json:"chunks"`
}

// ListInput is the input schema for the list_documents tool.
type ListInput struct{}

// ListOutput is the output schema for the list_documents tool.
type ListOutput struct {
	Documents []string `json:"documents"`
	Count     int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documents",
		Description: "Search the indexed documents for relevant chunks",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_question",
		Description: "Answer a question using the indexed documents, with citations",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ingest_pdf",
		Description: "Extract, chunk, embed and index a PDF file",
	}, s.handleIngest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the source files currently in the index",
	}, s.handleList)
}

// handleSearch handles the search_documents tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Index.Search(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			Text:       results[i].Text,
			SourceFile: results[i].Metadata.SourceFile,
			PageNumber: results[i].Metadata.PageNumber,
			Distance:   results[i].Distance,
			Citation:   results[i].Metadata.Citation(),
		}
	}

	return nil, output, nil
}

// handleAsk handles the ask_question tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Answer.Answer(ctx, input.Question, input.TopK)
	if err != nil {
		return nil, AskOutput{}, err
	}
	return nil, AskOutput{Answer: answer}, nil
}

// handleIngest handles the ingest_pdf tool invocation.
func (s *Server) handleIngest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IngestInput,
) (*mcp.CallToolResult, IngestOutput, error) {
	if s.ports.Ingest == nil {
		return nil, IngestOutput{}, errors.New("ingest is not available: AI services are not configured")
	}

	chunks, err := s.ports.Ingest.Ingest(ctx, input.Path, nil)
	if err != nil {
		return nil, IngestOutput{}, err
	}
	return nil, IngestOutput{Chunks: chunks}, nil
}

// handleList handles the list_documents tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	documents, err := s.ports.Index.ListDocuments(ctx)
	if err != nil {
		return nil, ListOutput{}, err
	}
	return nil, ListOutput{Documents: documents, Count: len(documents)}, nil
}
