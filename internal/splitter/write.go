package splitter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chapterpress/chapsplit/internal/toc"
)

// ManifestName is the index file listing every chapter's page span.
const ManifestName = "SPLIT_INDEX.tsv"

const manifestHeader = "pdf_start\tpdf_end\tbook_start\ttitle"

// Source is the page-addressable document the splitter reads from.
type Source interface {
	PageCount() int
	ExtractRange(start, end int, w io.Writer) error
}

// Options configures a split run.
type Options struct {
	OutDir     string
	PageOffset int
	Logger     *slog.Logger
}

// ChapterFile records one written chapter.
type ChapterFile struct {
	Filename  string
	Range     Range
	BookStart int
}

// Split resolves the TOC against doc and writes one PDF per chapter into
// OutDir, then the manifest. Range errors surface before anything is
// written. A write failure aborts the run; files written so far stay on disk
// and the manifest is not produced.
func Split(ctx context.Context, t toc.Toc, doc Source, opts Options) ([]ChapterFile, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	total := doc.PageCount()
	ranges, err := Resolve(t, total, opts.PageOffset)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files := make([]ChapterFile, 0, len(ranges))
	for i, r := range ranges {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := Filename(i+1, r.Title)
		if err := writeChapter(doc, r, filepath.Join(opts.OutDir, name)); err != nil {
			return nil, err
		}
		log.Info("wrote chapter",
			"file", name,
			"first_page", r.Start+1,
			"last_page", r.End+1,
			"total_pages", total,
		)
		files = append(files, ChapterFile{Filename: name, Range: r, BookStart: t[i].Start})
	}

	manifestPath := filepath.Join(opts.OutDir, ManifestName)
	if err := writeManifest(manifestPath, t, ranges); err != nil {
		return nil, err
	}
	log.Info("wrote manifest", "file", ManifestName, "chapters", len(ranges))

	return files, nil
}

func writeChapter(doc Source, r Range, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := doc.ExtractRange(r.Start, r.End, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to extract pages for %q: %w", r.Title, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writeManifest rewrites the manifest in full, one row per chapter in
// resolution order, with 1-based PDF page numbers.
func writeManifest(path string, t toc.Toc, ranges []Range) error {
	var b strings.Builder
	b.WriteString(manifestHeader + "\n")
	for i, r := range ranges {
		fmt.Fprintf(&b, "%d\t%d\t%d\t%s\n", r.Start+1, r.End+1, t[i].Start, r.Title)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
