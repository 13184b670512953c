// Package pdf wraps pdfcpu behind the small read-and-extract surface the
// splitter needs. Pages are treated as opaque units; nothing in here inspects
// or rewrites page content.
package pdf

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document is a read-only handle to an opened PDF.
type Document struct {
	path string
	ctx  *model.Context
}

// Open reads and validates the PDF at path.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF %s: %w", path, err)
	}

	return &Document{path: path, ctx: ctx}, nil
}

// Path returns the path the document was opened from.
func (d *Document) Path() string { return d.path }

// PageCount returns the number of physical pages.
func (d *Document) PageCount() int { return d.ctx.PageCount }

// ExtractRange writes pages [start, end] (zero-based, inclusive) to w as a
// standalone PDF, preserving page order.
func (d *Document) ExtractRange(start, end int, w io.Writer) error {
	if start < 0 || end < start || end >= d.ctx.PageCount {
		return fmt.Errorf("page range %d-%d outside document (%d pages)", start+1, end+1, d.ctx.PageCount)
	}

	// pdfcpu page numbers are 1-based.
	pages := make([]int, 0, end-start+1)
	for p := start + 1; p <= end+1; p++ {
		pages = append(pages, p)
	}

	extracted, err := pdfcpu.ExtractPages(d.ctx, pages, false)
	if err != nil {
		return fmt.Errorf("failed to extract pages %d-%d: %w", start+1, end+1, err)
	}
	if err := api.WriteContext(extracted, w); err != nil {
		return fmt.Errorf("failed to write extracted pages: %w", err)
	}
	return nil
}
