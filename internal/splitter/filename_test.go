package splitter

import (
	"strings"
	"testing"
)

func TestFilename(t *testing.T) {
	cases := []struct {
		name  string
		pos   int
		title string
		want  string
	}{
		{"numbered_chapter", 1, "1 Introduction", "Ch01_Introduction.pdf"},
		{"unnumbered_title", 1, "Preface", "Part_01_Preface.pdf"},
		{"double_digit_chapter", 3, "12 Knowledge Representation", "Ch12_Knowledge_Representation.pdf"},
		{"three_digit_chapter", 3, "105 Appendix", "Ch105_Appendix.pdf"},
		{"position_padding", 7, "Index", "Part_07_Index.pdf"},
		{"punctuation_stripped", 2, "Search: Heuristics & Tricks!", "Part_02_Search_Heuristics_Tricks.pdf"},
		{"whitespace_collapsed", 2, "  Deep   Learning \t Basics ", "Part_02_Deep_Learning_Basics.pdf"},
		{"digits_without_following_text", 4, "42", "Part_04_42.pdf"},
		{"all_punctuation_title", 5, "!!!???", "Part_05.pdf"},
		{"numbered_with_punctuation_rest", 6, "3 ???", "Ch03.pdf"},
		{"hyphen_and_period_kept", 1, "2.5 Agent-Based Models", "Part_01_2.5_Agent-Based_Models.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Filename(tc.pos, tc.title); got != tc.want {
				t.Errorf("Filename(%d, %q) = %q, want %q", tc.pos, tc.title, got, tc.want)
			}
		})
	}
}

func TestFilename_Deterministic(t *testing.T) {
	first := Filename(3, "9 Inference in First-Order Logic")
	second := Filename(3, "9 Inference in First-Order Logic")
	if first != second {
		t.Errorf("Filename() not deterministic: %q vs %q", first, second)
	}
}

func TestFilename_NeverContainsSeparators(t *testing.T) {
	titles := []string{
		"a/b/c",
		`a\b\c`,
		"../../etc/passwd",
		"Chapter 1: The / Beginning",
	}
	for _, title := range titles {
		name := Filename(1, title)
		if strings.ContainsAny(name, `/\`) {
			t.Errorf("Filename(1, %q) = %q contains a path separator", title, name)
		}
	}
}

func TestSanitizeTitle_Truncates(t *testing.T) {
	long := strings.Repeat("a", 400)
	got := sanitizeTitle(long)
	if len([]rune(got)) != maxBaseNameLen {
		t.Errorf("sanitized length = %d, want %d", len([]rune(got)), maxBaseNameLen)
	}
}
