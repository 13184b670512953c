package splitter

import "fmt"

// OutOfRangeError reports a chapter whose computed start page falls outside
// the document. Page is the offending 1-based PDF page.
type OutOfRangeError struct {
	Title string
	Page  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("computed start page %d out of range for %q: check the page offset or the TOC start page", e.Page, e.Title)
}

// InvertedRangeError reports a chapter whose computed end precedes its start,
// which points at TOC ordering or a misconfigured page offset.
type InvertedRangeError struct {
	Title string
}

func (e *InvertedRangeError) Error() string {
	return fmt.Sprintf("end before start for %q: check the TOC ordering and the page offset", e.Title)
}
