package splitter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// maxBaseNameLen caps the sanitized portion of a derived filename.
const maxBaseNameLen = 180

// chapterNumRe matches titles that carry their own chapter number,
// e.g. "12 Knowledge Representation".
var chapterNumRe = regexp.MustCompile(`^(\d+)\s+(.+)$`)

// Filename derives the output filename for a chapter. Titles with a leading
// chapter number become "Ch<NN>_<title>.pdf"; everything else falls back to
// the 1-based sequence position as "Part_<NN>_<title>.pdf".
func Filename(pos int, title string) string {
	trimmed := strings.TrimSpace(title)
	if m := chapterNumRe.FindStringSubmatch(trimmed); m != nil {
		if num, err := strconv.Atoi(m[1]); err == nil {
			if name := sanitizeTitle(m[2]); name != "" {
				return fmt.Sprintf("Ch%02d_%s.pdf", num, name)
			}
			return fmt.Sprintf("Ch%02d.pdf", num)
		}
	}
	if name := sanitizeTitle(trimmed); name != "" {
		return fmt.Sprintf("Part_%02d_%s.pdf", pos, name)
	}
	return fmt.Sprintf("Part_%02d.pdf", pos)
}

// sanitizeTitle strips everything that is not a letter, digit, underscore,
// hyphen or period, collapses whitespace runs into single underscores, and
// caps the length. The result never contains path separators; an
// all-punctuation title sanitizes to "".
func sanitizeTitle(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	cleaned := strings.Join(strings.Fields(b.String()), "_")
	if runes := []rune(cleaned); len(runes) > maxBaseNameLen {
		cleaned = string(runes[:maxBaseNameLen])
	}
	return cleaned
}
