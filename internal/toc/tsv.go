package toc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseTSV reads a tab-separated TOC, one "start<TAB>title" record per line.
// Blank lines and lines starting with '#' are skipped.
func ParseTSV(r io.Reader) (Toc, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, &MalformedError{Reason: fmt.Sprintf("line %d needs 'start<TAB>title': %q", lineNum, line)}
		}

		start, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, &MalformedError{Reason: fmt.Sprintf("line %d has a non-integer start page %q", lineNum, fields[0])}
		}

		entries = append(entries, Entry{
			Title: strings.TrimSpace(fields[1]),
			Start: start,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read toc: %w", err)
	}

	return Normalize(entries)
}
