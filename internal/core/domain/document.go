package domain

import "fmt"

// Page holds the extracted text of a single document page.
// Page numbers are 1-based, matching how readers cite documents.
type Page struct {
	// Number is the 1-based page number within the source document.
	Number int

	// Text is the extracted plain text of the page.
	Text string
}

// Chunk represents a bounded slice of document text, the unit of
// embedding and retrieval. Chunks are immutable once created.
type Chunk struct {
	// Text is the chunk content.
	Text string

	// PageNumber is the 1-based page the chunk was cut from.
	PageNumber int

	// Index is the 0-based ordinal of the chunk within its source
	// document. Indices increase monotonically across pages.
	Index int

	// SourceFile is the originating document, typically a file path
	// or base name.
	SourceFile string
}

// Metadata returns the chunk's identifying metadata.
func (c Chunk) Metadata() ChunkMetadata {
	return ChunkMetadata{
		PageNumber: c.PageNumber,
		ChunkIndex: c.Index,
		SourceFile: c.SourceFile,
	}
}

// VectorID returns the stable identifier under which this chunk is
// indexed. Re-ingesting the same document produces the same IDs, so
// stored vectors are overwritten rather than duplicated.
func (c Chunk) VectorID() string {
	return VectorID(c.SourceFile, c.Index)
}

// VectorID derives the index identifier for a (source, chunk) pair.
func VectorID(sourceFile string, chunkIndex int) string {
	return fmt.Sprintf("%s_%d", sourceFile, chunkIndex)
}

// ChunkMetadata identifies where an indexed chunk came from.
type ChunkMetadata struct {
	// PageNumber is the 1-based page the chunk was cut from.
	PageNumber int

	// ChunkIndex is the 0-based ordinal within the source document.
	ChunkIndex int

	// SourceFile is the originating document.
	SourceFile string
}

// Citation renders the metadata as a human-readable reference,
// e.g. "report.pdf (Page 3)".
func (m ChunkMetadata) Citation() string {
	return fmt.Sprintf("%s (Page %d)", m.SourceFile, m.PageNumber)
}
