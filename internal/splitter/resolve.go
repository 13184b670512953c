// Package splitter turns a canonical TOC into physical page ranges and
// materializes one PDF per chapter plus a manifest.
package splitter

import (
	"fmt"

	"github.com/chapterpress/chapsplit/internal/toc"
)

// Range is a contiguous span of physical pages assigned to one chapter.
// Start and End are zero-based inclusive PDF page indices.
type Range struct {
	Title string
	Start int
	End   int
}

// Resolve maps each TOC entry to its page range. Each chapter ends one page
// before the next chapter's computed start; the last chapter runs to the end
// of the document. For well-formed input the ranges partition
// [0, totalPages-1] with no gaps and no overlaps.
func Resolve(t toc.Toc, totalPages, pageOffset int) ([]Range, error) {
	if totalPages <= 0 {
		return nil, fmt.Errorf("document has no pages")
	}
	if len(t) == 0 {
		return nil, toc.ErrEmpty
	}

	ranges := make([]Range, 0, len(t))
	for i, entry := range t {
		start := entry.Start + pageOffset - 1
		if start < 0 || start >= totalPages {
			return nil, &OutOfRangeError{Title: entry.Title, Page: start + 1}
		}

		end := totalPages - 1
		if i < len(t)-1 {
			end = t[i+1].Start + pageOffset - 2
			if end > totalPages-1 {
				end = totalPages - 1
			}
		}
		if end < start {
			return nil, &InvertedRangeError{Title: entry.Title}
		}

		ranges = append(ranges, Range{Title: entry.Title, Start: start, End: end})
	}
	return ranges, nil
}
