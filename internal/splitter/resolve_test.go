package splitter

import (
	"errors"
	"testing"

	"github.com/chapterpress/chapsplit/internal/toc"
)

func TestResolve_BookScenario(t *testing.T) {
	// Book page 1 sits at PDF page 17, so offset 16.
	entries := toc.Toc{
		{Title: "Introduction", Start: 1},
		{Title: "Intelligent Agents", Start: 34},
	}
	got, err := Resolve(entries, 600, 16)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := []Range{
		{Title: "Introduction", Start: 16, End: 48},
		{Title: "Intelligent Agents", Start: 49, End: 599},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d ranges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestResolve_PartitionsDocument(t *testing.T) {
	cases := []struct {
		name       string
		toc        toc.Toc
		totalPages int
		offset     int
	}{
		{
			name:       "no_offset",
			toc:        toc.Toc{{Title: "A", Start: 1}, {Title: "B", Start: 5}, {Title: "C", Start: 9}},
			totalPages: 20,
			offset:     0,
		},
		{
			name:       "with_offset",
			toc:        toc.Toc{{Title: "A", Start: 1}, {Title: "B", Start: 34}, {Title: "C", Start: 64}},
			totalPages: 600,
			offset:     16,
		},
		{
			name:       "front_matter_before_first_chapter",
			toc:        toc.Toc{{Title: "A", Start: 3}},
			totalPages: 10,
			offset:     0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ranges, err := Resolve(tc.toc, tc.totalPages, tc.offset)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if len(ranges) != len(tc.toc) {
				t.Fatalf("got %d ranges, want %d", len(ranges), len(tc.toc))
			}
			for i, r := range ranges {
				if r.Start > r.End {
					t.Errorf("range %d inverted: %+v", i, r)
				}
				if i > 0 && r.Start != ranges[i-1].End+1 {
					t.Errorf("gap or overlap between range %d and %d: %+v, %+v", i-1, i, ranges[i-1], r)
				}
			}
			if last := ranges[len(ranges)-1]; last.End != tc.totalPages-1 {
				t.Errorf("last range ends at %d, want %d", last.End, tc.totalPages-1)
			}
		})
	}
}

func TestResolve_SingleEntry(t *testing.T) {
	ranges, err := Resolve(toc.Toc{{Title: "Only", Start: 2}}, 50, 3)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1", len(ranges))
	}
	if ranges[0].Start != 4 || ranges[0].End != 49 {
		t.Errorf("range = %+v, want Start=4 End=49", ranges[0])
	}
}

func TestResolve_SharedStartPage(t *testing.T) {
	entries := toc.Toc{
		{Title: "First", Start: 10},
		{Title: "Second", Start: 10},
	}
	_, err := Resolve(entries, 100, 0)
	var inverted *InvertedRangeError
	if !errors.As(err, &inverted) {
		t.Fatalf("Resolve() error = %v, want *InvertedRangeError", err)
	}
	if inverted.Title != "First" {
		t.Errorf("error names %q, want the earlier entry %q", inverted.Title, "First")
	}
}

func TestResolve_OutOfRange(t *testing.T) {
	cases := []struct {
		name       string
		toc        toc.Toc
		totalPages int
		offset     int
		wantTitle  string
		wantPage   int
	}{
		{
			name:       "start_page_zero",
			toc:        toc.Toc{{Title: "Bad", Start: 0}},
			totalPages: 100,
			offset:     0,
			wantTitle:  "Bad",
			wantPage:   0,
		},
		{
			name:       "negative_start",
			toc:        toc.Toc{{Title: "Bad", Start: -3}},
			totalPages: 100,
			offset:     0,
			wantTitle:  "Bad",
			wantPage:   -3,
		},
		{
			name:       "start_beyond_document",
			toc:        toc.Toc{{Title: "A", Start: 1}, {Title: "Trailing", Start: 700}},
			totalPages: 600,
			offset:     16,
			wantTitle:  "Trailing",
			wantPage:   716,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tc.toc, tc.totalPages, tc.offset)
			var oor *OutOfRangeError
			if !errors.As(err, &oor) {
				t.Fatalf("Resolve() error = %v, want *OutOfRangeError", err)
			}
			if oor.Title != tc.wantTitle {
				t.Errorf("error names %q, want %q", oor.Title, tc.wantTitle)
			}
			if oor.Page != tc.wantPage {
				t.Errorf("error page = %d, want %d", oor.Page, tc.wantPage)
			}
		})
	}
}

func TestResolve_EmptyToc(t *testing.T) {
	_, err := Resolve(nil, 100, 0)
	if !errors.Is(err, toc.ErrEmpty) {
		t.Errorf("Resolve(nil) error = %v, want ErrEmpty", err)
	}
}
