package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chapterpress/chapsplit/internal/toc"
)

// tocFlags holds the mutually exclusive TOC source flags shared by the
// split and plan commands.
type tocFlags struct {
	jsonPath string
	tsvPath  string
	yamlPath string
}

func (f *tocFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.jsonPath, "toc-json", "", "path to a JSON TOC (list or mapping form)")
	cmd.Flags().StringVar(&f.tsvPath, "toc-tsv", "", "path to a TSV TOC with 'start<TAB>title' lines")
	cmd.Flags().StringVar(&f.yamlPath, "toc-yaml", "", "path to a YAML TOC (list or mapping form)")
	cmd.MarkFlagsMutuallyExclusive("toc-json", "toc-tsv", "toc-yaml")
}

// load parses the selected TOC file into canonical form.
func (f *tocFlags) load() (toc.Toc, error) {
	var path string
	var parse func(io.Reader) (toc.Toc, error)
	switch {
	case f.jsonPath != "":
		path, parse = f.jsonPath, toc.ParseJSON
	case f.tsvPath != "":
		path, parse = f.tsvPath, toc.ParseTSV
	case f.yamlPath != "":
		path, parse = f.yamlPath, toc.ParseYAML
	default:
		return nil, fmt.Errorf("one of --toc-json, --toc-tsv or --toc-yaml is required")
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open TOC file: %w", err)
	}
	defer fh.Close()

	t, err := parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
