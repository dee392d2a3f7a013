package pdf

import (
	"context"

	"github.com/kgeorge/pdflines/pkg/models"
)

// Extractor pulls the text content of a PDF out as pages of lines.
// Implementations read the file once per call and hold no state across
// calls; the returned pages are in document order.
type Extractor interface {
	ExtractPages(ctx context.Context, path string) ([]models.Page, error)
}
