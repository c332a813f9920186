// Package pdf provides page-wise PDF text extraction.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docent-labs/docent/internal/core/domain"
	"github.com/docent-labs/docent/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor reads PDF files and returns their text page by page.
type Extractor struct{}

// NewExtractor creates a new PDF extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the PDF at path and returns its pages in order.
// Pages with no extractable text are omitted; page numbers always
// reflect the position in the original document.
func (e *Extractor) Extract(ctx context.Context, path string) ([]domain.Page, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	totalPages := reader.NumPage()
	pages := make([]domain.Page, 0, totalPages)

	for num := 1; num <= totalPages; num++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single broken page should not sink the whole document.
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		pages = append(pages, domain.Page{
			Number: num,
			Text:   text,
		})
	}

	return pages, nil
}
