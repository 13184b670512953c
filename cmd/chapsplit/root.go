package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chapterpress/chapsplit/internal/cli"
	"github.com/chapterpress/chapsplit/internal/config"
	"github.com/chapterpress/chapsplit/version"
)

var (
	cfgFile      string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "chapsplit",
	Short: "Split a multi-chapter PDF into one file per chapter",
	Long: `Chapsplit cuts a single multi-chapter PDF into per-chapter PDFs using a
table of contents mapping chapter titles to their book start pages.

Each chapter runs from its start page to one page before the next chapter;
the last chapter runs to the end of the document. A page offset aligns the
book's printed pagination with the physical PDF pages. Alongside the chapter
files, a SPLIT_INDEX.tsv manifest records every page span.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.chapsplit/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cli.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the run logger, honoring --verbose and the config file.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if verbose || cfg.Logging.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
