package driving

import "context"

// IngestService loads documents into the index.
type IngestService interface {
	// Ingest extracts, chunks, embeds and stores the document at path.
	// onProgress, when non-nil, receives the embedding completion
	// fraction in [0,1], non-decreasing, ending at 1.0. Returns the
	// number of chunks indexed.
	Ingest(ctx context.Context, path string, onProgress func(float64)) (int, error)
}
