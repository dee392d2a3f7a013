package pdf

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	ledongthuc "github.com/ledongthuc/pdf"

	"github.com/kgeorge/pdflines/pkg/logger"
	"github.com/kgeorge/pdflines/pkg/models"
)

// Glyphs closer than this vertically belong to the same line; text on
// a shared baseline has identical Y, so the tolerance only absorbs
// sub/superscripts and rounding.
const lineTolerance = 2.0

// PureExtractor extracts text with the pure-Go ledongthuc/pdf parser.
// No cgo or MuPDF install is needed, so it works where the fitz engine
// cannot, with rougher text layout reconstruction.
type PureExtractor struct {
	log *logger.Logger
}

func NewPureExtractor(log *logger.Logger) *PureExtractor {
	return &PureExtractor{log: log}
}

func (e *PureExtractor) ExtractPages(ctx context.Context, path string) (pages []models.Page, err error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}

	// The parser panics on some malformed documents instead of
	// returning an error.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: parse %s: %v", ErrDocumentUnreadable, path, r)
		}
	}()

	f, r, err := ledongthuc.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDocumentUnreadable, path, err)
	}
	defer f.Close()

	e.log.Debug("opened %s: %d pages", path, r.NumPage())

	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		page := models.Page{Number: pageNum}

		p := r.Page(pageNum)
		if !p.V.IsNull() {
			page.Lines = glyphsToLines(p.Content().Text)
		}

		e.log.Trace("page %d: %d lines", page.Number, len(page.Lines))
		pages = append(pages, page)
	}

	return pages, nil
}

// glyphsToLines rebuilds a page's lines from positioned text
// fragments. Fragments are ordered top to bottom, then left to right
// (PDF Y grows upward); a Y jump beyond lineTolerance starts a new
// line, so a token can never span two document lines. Within a line a
// horizontal gap wider than a quarter of the font size becomes a
// single space.
func glyphsToLines(texts []ledongthuc.Text) []string {
	if len(texts) == 0 {
		return nil
	}

	sort.SliceStable(texts, func(i, j int) bool {
		if math.Abs(texts[i].Y-texts[j].Y) > lineTolerance {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var lines []string
	var sb strings.Builder
	lastY := texts[0].Y
	lastEnd := texts[0].X
	lastW := 0.0

	for _, t := range texts {
		if math.Abs(t.Y-lastY) > lineTolerance {
			lines = append(lines, sb.String())
			sb.Reset()
			lastY = t.Y
		} else if sb.Len() > 0 && lastW > 0 && t.X > lastEnd+0.25*t.FontSize {
			// Horizontal gap between fragments that is not a space
			// glyph. Skipped when the font reports no widths, since
			// lastEnd is then meaningless.
			sb.WriteByte(' ')
		}
		sb.WriteString(t.S)
		lastEnd = t.X + t.W
		lastW = t.W
	}
	lines = append(lines, sb.String())

	return lines
}
