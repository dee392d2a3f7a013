package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/kgeorge/pdflines/pkg/logger"
	"github.com/kgeorge/pdflines/pkg/models"
)

// FitzExtractor extracts text through MuPDF (go-fitz). It is the
// default engine and gives the best text layer fidelity, at the cost
// of cgo and a MuPDF install.
type FitzExtractor struct {
	log *logger.Logger
}

func NewFitzExtractor(log *logger.Logger) *FitzExtractor {
	return &FitzExtractor{log: log}
}

func (e *FitzExtractor) ExtractPages(ctx context.Context, path string) ([]models.Page, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDocumentUnreadable, path, err)
	}
	defer doc.Close()

	e.log.Debug("opened %s: %d pages", path, doc.NumPage())

	var pages []models.Page

	// Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text, err := doc.Text(pageNum)
		if err != nil {
			return nil, fmt.Errorf("%w: text of page %d: %v", ErrDocumentUnreadable, pageNum+1, err)
		}

		page := models.Page{Number: pageNum + 1, Lines: splitPageText(text)}
		e.log.Trace("page %d: %d lines", page.Number, len(page.Lines))
		pages = append(pages, page)
	}

	return pages, nil
}

// splitPageText turns a page's raw text into lines, keeping the
// engine's internal ordering. Blank pages yield no lines; interior
// blank lines are kept so line numbering matches the document.
func splitPageText(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	text = strings.TrimRight(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
