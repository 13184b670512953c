// Package toc parses and normalizes tables of contents into a canonical
// ordered list of chapter start pages.
package toc

import (
	"errors"
	"fmt"
	"sort"
)

// maxNestingDepth bounds recursion when flattening grouped mapping forms.
const maxNestingDepth = 32

// ErrEmpty is returned when a TOC source yields zero usable entries.
var ErrEmpty = errors.New("toc has no entries")

// MalformedError describes structurally invalid TOC input.
type MalformedError struct {
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed toc: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed toc: %s", e.Reason)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// Entry is one chapter heading: the title and the book-relative start page (1-based).
type Entry struct {
	Title string `json:"title" yaml:"title"`
	Start int    `json:"start" yaml:"start"`
}

// Toc is the canonical table of contents: entries sorted ascending by start
// page. The sort is stable, so entries sharing a start page keep the order
// they were discovered in.
type Toc []Entry

// Normalize builds the canonical TOC from entries in discovery order.
func Normalize(entries []Entry) (Toc, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	out := make(Toc, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out, nil
}
