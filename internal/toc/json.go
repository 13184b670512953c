package toc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// tocSchema describes the two accepted JSON shapes: an ordered list of
// {title, start} records, or a title->start mapping whose values may be
// nested mappings (grouping, e.g. by book part).
const tocSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"oneOf": [
		{
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title", "start"],
				"properties": {
					"title": {"type": "string"},
					"start": {"type": ["integer", "string"]}
				}
			}
		},
		{"$ref": "#/$defs/group"}
	],
	"$defs": {
		"group": {
			"type": "object",
			"additionalProperties": {
				"oneOf": [
					{"type": "integer"},
					{"type": "string"},
					{"$ref": "#/$defs/group"}
				]
			}
		}
	}
}`

var compiledTocSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("toc.schema.json", strings.NewReader(tocSchema)); err != nil {
		panic(fmt.Sprintf("failed to load toc schema: %v", err))
	}
	schema, err := compiler.Compile("toc.schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile toc schema: %v", err))
	}
	return schema
}

// ParseJSON reads a structured TOC in either list or mapping form and
// returns the canonical TOC. The document is validated against tocSchema
// first so shape errors carry a precise location, then re-walked with a
// token decoder because mapping order matters and Go maps do not keep it.
func ParseJSON(r io.Reader) (Toc, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read toc: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedError{Reason: "invalid JSON", Err: err}
	}
	if err := compiledTocSchema.Validate(doc); err != nil {
		return nil, &MalformedError{Reason: "toc does not match the expected shape", Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, &MalformedError{Reason: "invalid JSON", Err: err}
	}

	var entries []Entry
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			entries, err = decodeEntryList(dec)
		case '{':
			entries, err = decodeGroup(dec, nil, 0)
		default:
			return nil, &MalformedError{Reason: "toc root must be a list or a mapping"}
		}
	default:
		return nil, &MalformedError{Reason: "toc root must be a list or a mapping"}
	}
	if err != nil {
		return nil, err
	}

	return Normalize(entries)
}

// decodeEntryList consumes the elements of an already-opened JSON array of
// {title, start} records, up to and including the closing bracket.
func decodeEntryList(dec *json.Decoder) ([]Entry, error) {
	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &MalformedError{Reason: "invalid JSON", Err: err}
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return nil, &MalformedError{Reason: "toc list items must be objects with 'title' and 'start'"}
		}

		var title string
		var start int
		var haveTitle, haveStart bool
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, &MalformedError{Reason: "invalid JSON", Err: err}
			}
			key := keyTok.(string)
			valTok, err := dec.Token()
			if err != nil {
				return nil, &MalformedError{Reason: "invalid JSON", Err: err}
			}
			switch key {
			case "title":
				s, ok := valTok.(string)
				if !ok {
					return nil, &MalformedError{Reason: "toc list item has a non-string title"}
				}
				title = s
				haveTitle = true
			case "start":
				n, err := coerceStart(valTok)
				if err != nil {
					return nil, &MalformedError{Reason: fmt.Sprintf("toc entry %q has a non-integer start page", title), Err: err}
				}
				start = n
				haveStart = true
			default:
				if err := skipValue(dec, valTok); err != nil {
					return nil, err
				}
			}
		}
		if _, err := dec.Token(); err != nil { // closing '}'
			return nil, &MalformedError{Reason: "invalid JSON", Err: err}
		}
		if !haveTitle || !haveStart {
			return nil, &MalformedError{Reason: "toc list items must have 'title' and 'start' keys"}
		}
		entries = append(entries, Entry{Title: title, Start: start})
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, &MalformedError{Reason: "invalid JSON", Err: err}
	}
	return entries, nil
}

// decodeGroup consumes the members of an already-opened JSON object,
// flattening nested groups depth-first in document order.
func decodeGroup(dec *json.Decoder, entries []Entry, depth int) ([]Entry, error) {
	if depth > maxNestingDepth {
		return nil, &MalformedError{Reason: fmt.Sprintf("toc nesting exceeds %d levels", maxNestingDepth)}
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &MalformedError{Reason: "invalid JSON", Err: err}
		}
		key := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, &MalformedError{Reason: "invalid JSON", Err: err}
		}
		if d, ok := valTok.(json.Delim); ok {
			if d != '{' {
				return nil, &MalformedError{Reason: fmt.Sprintf("toc value for %q must be a start page or a nested group", key)}
			}
			entries, err = decodeGroup(dec, entries, depth+1)
			if err != nil {
				return nil, err
			}
			continue
		}

		n, err := coerceStart(valTok)
		if err != nil {
			return nil, &MalformedError{Reason: fmt.Sprintf("toc entry %q has a non-integer start page", key), Err: err}
		}
		entries = append(entries, Entry{Title: key, Start: n})
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, &MalformedError{Reason: "invalid JSON", Err: err}
	}
	return entries, nil
}

// coerceStart converts a decoded JSON scalar to a start page number.
// Numeric strings are accepted the way hand-edited TOC files tend to use them.
func coerceStart(tok json.Token) (int, error) {
	switch v := tok.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", v.String())
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%v is not an integer", tok)
	}
}

// skipValue discards the remainder of a composite value whose opening token
// has already been read.
func skipValue(dec *json.Decoder, opening json.Token) error {
	d, ok := opening.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return &MalformedError{Reason: "invalid JSON", Err: err}
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
