package domain

// SearchResult represents a single similarity hit against the index.
// Results are ephemeral query output, ordered ascending by Distance.
type SearchResult struct {
	// Text is the matched chunk content.
	Text string

	// Metadata identifies the chunk's source document and page.
	Metadata ChunkMetadata

	// Distance is the cosine distance (1 - cosine similarity) between
	// the query and the stored vector. Lower is closer.
	Distance float64
}
