// Package chunker splits text into bounded, overlapping segments.
//
// Segments prefer to end on a sentence boundary (". "), then on a word
// boundary (" "), and only cut mid-word when a window contains neither.
// Consecutive segments share a fixed overlap so context survives the
// cut points.
package chunker

import (
	"fmt"
	"strings"

	"github.com/docent-labs/docent/internal/core/domain"
)

// DefaultChunkSize is the default maximum segment length in bytes.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping bytes.
const DefaultChunkOverlap = 200

// Splitter cuts text into segments of at most chunkSize bytes.
type Splitter struct {
	chunkSize int
	overlap   int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the maximum segment size in bytes.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		s.chunkSize = size
	}
}

// WithOverlap sets the overlap between consecutive segments in bytes.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		s.overlap = overlap
	}
}

// New creates a splitter with the given options. A configuration that
// could stall the split loop (non-positive size, negative overlap, or
// overlap >= size) is rejected rather than clamped.
func New(opts ...Option) (*Splitter, error) {
	s := &Splitter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", domain.ErrInvalidChunking, s.chunkSize)
	}
	if s.overlap < 0 {
		return nil, fmt.Errorf("%w: overlap must not be negative, got %d", domain.ErrInvalidChunking, s.overlap)
	}
	if s.overlap >= s.chunkSize {
		return nil, fmt.Errorf("%w: overlap %d must be smaller than chunk size %d", domain.ErrInvalidChunking, s.overlap, s.chunkSize)
	}

	return s, nil
}

// Split cuts text into segments. Segments are trimmed of surrounding
// whitespace; whitespace-only segments are dropped. Text no longer than
// the chunk size comes back as a single segment.
//
// Within each window the cut point is the last ". ", else the last " ",
// else the hard limit at chunkSize.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	n := len(text)
	estimated := n/(s.chunkSize-s.overlap) + 1
	segments := make([]string, 0, estimated)

	start := 0
	for start < n {
		end := start + s.chunkSize
		if end >= n {
			if seg := strings.TrimSpace(text[start:]); seg != "" {
				segments = append(segments, seg)
			}
			break
		}

		// A boundary cut is only honoured when the next cursor
		// (end - overlap) still moves forward; otherwise the hard cut
		// applies, which always advances because overlap < chunkSize.
		window := text[start:end]
		if period := strings.LastIndex(window, ". "); period+1 > s.overlap {
			// Keep the period, drop the following space.
			end = start + period + 1
		} else if space := strings.LastIndex(window, " "); space > s.overlap {
			end = start + space
		}

		if seg := strings.TrimSpace(text[start:end]); seg != "" {
			segments = append(segments, seg)
		}

		start = end - s.overlap
	}

	return segments
}
