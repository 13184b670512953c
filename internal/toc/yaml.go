package toc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads a structured TOC in YAML form. The same shapes as JSON are
// accepted: a list of {title, start} records, or a title->start mapping with
// optional nested groups. Parsing works on yaml.Node because mapping order
// matters and must survive the decode.
func ParseYAML(r io.Reader) (Toc, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read toc: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &MalformedError{Reason: "invalid YAML", Err: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrEmpty
	}

	node := root.Content[0]
	var entries []Entry
	switch node.Kind {
	case yaml.SequenceNode:
		entries, err = yamlEntryList(node)
	case yaml.MappingNode:
		entries, err = yamlGroup(node, nil, 0)
	default:
		return nil, &MalformedError{Reason: "toc root must be a list or a mapping"}
	}
	if err != nil {
		return nil, err
	}

	return Normalize(entries)
}

func yamlEntryList(seq *yaml.Node) ([]Entry, error) {
	var entries []Entry
	for _, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			return nil, &MalformedError{Reason: fmt.Sprintf("toc list item at line %d must be a mapping with 'title' and 'start'", item.Line)}
		}

		var title string
		var start int
		var haveTitle, haveStart bool
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, value := item.Content[i], item.Content[i+1]
			switch key.Value {
			case "title":
				if value.Kind != yaml.ScalarNode {
					return nil, &MalformedError{Reason: fmt.Sprintf("toc list item at line %d has a non-scalar title", item.Line)}
				}
				title = value.Value
				haveTitle = true
			case "start":
				n, err := yamlStart(value)
				if err != nil {
					return nil, &MalformedError{Reason: fmt.Sprintf("toc entry %q has a non-integer start page", title), Err: err}
				}
				start = n
				haveStart = true
			}
		}
		if !haveTitle || !haveStart {
			return nil, &MalformedError{Reason: fmt.Sprintf("toc list item at line %d must have 'title' and 'start' keys", item.Line)}
		}
		entries = append(entries, Entry{Title: title, Start: start})
	}
	return entries, nil
}

func yamlGroup(m *yaml.Node, entries []Entry, depth int) ([]Entry, error) {
	if depth > maxNestingDepth {
		return nil, &MalformedError{Reason: fmt.Sprintf("toc nesting exceeds %d levels", maxNestingDepth)}
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		if value.Kind == yaml.AliasNode {
			value = value.Alias
		}
		switch value.Kind {
		case yaml.MappingNode:
			var err error
			entries, err = yamlGroup(value, entries, depth+1)
			if err != nil {
				return nil, err
			}
		case yaml.ScalarNode:
			n, err := yamlStart(value)
			if err != nil {
				return nil, &MalformedError{Reason: fmt.Sprintf("toc entry %q has a non-integer start page", key.Value), Err: err}
			}
			entries = append(entries, Entry{Title: key.Value, Start: n})
		default:
			return nil, &MalformedError{Reason: fmt.Sprintf("toc value for %q must be a start page or a nested group", key.Value)}
		}
	}
	return entries, nil
}

func yamlStart(node *yaml.Node) (int, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("value at line %d is not a scalar", node.Line)
	}
	var n int
	if err := node.Decode(&n); err == nil {
		return n, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(node.Value))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", node.Value)
	}
	return n, nil
}
