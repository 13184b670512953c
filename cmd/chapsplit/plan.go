package main

import (
	"github.com/spf13/cobra"

	"github.com/chapterpress/chapsplit/internal/cli"
	"github.com/chapterpress/chapsplit/internal/config"
	"github.com/chapterpress/chapsplit/internal/pdf"
	"github.com/chapterpress/chapsplit/internal/splitter"
)

var (
	planToc        tocFlags
	planPDFPath    string
	planPageOffset int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the chapter ranges a split would produce without writing anything",
	Long: `Resolve the TOC against the PDF and print the resulting plan: one entry
per chapter with the derived filename and 1-based page span. Nothing is
written to disk, so this is the way to verify a --page-offset value before
splitting.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		offset := planPageOffset
		if !cmd.Flags().Changed("page-offset") {
			offset = cfg.Defaults.PageOffset
		}

		t, err := planToc.load()
		if err != nil {
			return err
		}

		doc, err := pdf.Open(planPDFPath)
		if err != nil {
			return err
		}

		entries, err := splitter.Plan(t, doc.PageCount(), offset)
		if err != nil {
			return err
		}

		return cli.Output(entries)
	},
}

func init() {
	planCmd.Flags().StringVar(&planPDFPath, "pdf", "", "input PDF path")
	planCmd.MarkFlagRequired("pdf")
	planToc.register(planCmd)
	planCmd.Flags().IntVar(&planPageOffset, "page-offset", 0, "offset mapping book pages to PDF pages (book page 1 at PDF page 17 means 16)")

	rootCmd.AddCommand(planCmd)
}
