package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/kgeorge/pdflines/pkg/logger"
	"github.com/kgeorge/pdflines/pkg/models"
)

// PdfcpuExtractor extracts text through pdfcpu. Page content streams
// are written to a scratch directory, read back in page order, and the
// shown text is decoded from their text operators; the scratch
// directory is removed before returning.
type PdfcpuExtractor struct {
	log *logger.Logger
}

func NewPdfcpuExtractor(log *logger.Logger) *PdfcpuExtractor {
	return &PdfcpuExtractor{log: log}
}

var contentPagePattern = regexp.MustCompile(`page_(\d+)\.txt$`)

func (e *PdfcpuExtractor) ExtractPages(ctx context.Context, path string) ([]models.Page, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}

	tmpDir, err := os.MkdirTemp("", "pdflines-pdfcpu-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractContentFile(path, tmpDir, nil, conf); err != nil {
		return nil, fmt.Errorf("%w: extract %s: %v", ErrDocumentUnreadable, path, err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scratch directory: %w", err)
	}

	var pages []models.Page
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		m := contentPagePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		pageNum, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		data, err := os.ReadFile(filepath.Join(tmpDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d content: %w", pageNum, err)
		}

		page := models.Page{Number: pageNum, Lines: decodeContentText(data)}
		e.log.Trace("page %d: %d lines", page.Number, len(page.Lines))
		pages = append(pages, page)
	}

	// ReadDir sorts lexically, which puts page 10 before page 2.
	sort.Slice(pages, func(i, j int) bool { return pages[i].Number < pages[j].Number })

	if len(pages) == 0 && !looksLikePDF(path) {
		return nil, fmt.Errorf("%w: %s has no extractable content", ErrDocumentUnreadable, path)
	}

	return pages, nil
}

// looksLikePDF checks the file magic. pdfcpu is lenient about some
// malformed inputs, so an empty extraction from a non-PDF file is
// reported as unreadable rather than as an empty document.
func looksLikePDF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	header := make([]byte, 5)
	if _, err := f.Read(header); err != nil {
		return false
	}
	return strings.HasPrefix(string(header), "%PDF-")
}
