package splitter

import "github.com/chapterpress/chapsplit/internal/toc"

// PlanEntry describes one chapter a split run would produce. Pages are
// 1-based so the plan reads like the manifest.
type PlanEntry struct {
	Filename  string `json:"filename" yaml:"filename"`
	Title     string `json:"title" yaml:"title"`
	FirstPage int    `json:"first_page" yaml:"first_page"`
	LastPage  int    `json:"last_page" yaml:"last_page"`
	Pages     int    `json:"pages" yaml:"pages"`
	BookStart int    `json:"book_start" yaml:"book_start"`
}

// Plan resolves the TOC without touching the filesystem and reports what a
// split run would write.
func Plan(t toc.Toc, totalPages, pageOffset int) ([]PlanEntry, error) {
	ranges, err := Resolve(t, totalPages, pageOffset)
	if err != nil {
		return nil, err
	}

	entries := make([]PlanEntry, 0, len(ranges))
	for i, r := range ranges {
		entries = append(entries, PlanEntry{
			Filename:  Filename(i+1, r.Title),
			Title:     r.Title,
			FirstPage: r.Start + 1,
			LastPage:  r.End + 1,
			Pages:     r.End - r.Start + 1,
			BookStart: t[i].Start,
		})
	}
	return entries, nil
}
