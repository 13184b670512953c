package main

import (
	"github.com/spf13/cobra"

	"github.com/chapterpress/chapsplit/internal/config"
	"github.com/chapterpress/chapsplit/internal/pdf"
	"github.com/chapterpress/chapsplit/internal/splitter"
)

var (
	splitToc        tocFlags
	splitPDFPath    string
	splitOutDir     string
	splitPageOffset int
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Write one PDF per chapter plus a SPLIT_INDEX.tsv manifest",
	Long: `Split the input PDF into per-chapter files.

The TOC lists book-relative start pages (1-based). If book page 1 is not
physical PDF page 1, pass --page-offset: with book page 1 at PDF page 17,
use --page-offset 16.

Examples:
  chapsplit split --pdf aima.pdf --toc-json aima_toc.json --outdir out --page-offset 16
  chapsplit split --pdf aima.pdf --toc-tsv aima_toc.tsv`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()
		logger := newLogger(cfg)

		outDir := splitOutDir
		if !cmd.Flags().Changed("outdir") && cfg.Defaults.OutDir != "" {
			outDir = config.ResolveEnvVars(cfg.Defaults.OutDir)
		}
		offset := splitPageOffset
		if !cmd.Flags().Changed("page-offset") {
			offset = cfg.Defaults.PageOffset
		}

		t, err := splitToc.load()
		if err != nil {
			return err
		}

		doc, err := pdf.Open(splitPDFPath)
		if err != nil {
			return err
		}
		logger.Debug("opened PDF", "path", splitPDFPath, "pages", doc.PageCount())

		files, err := splitter.Split(cmd.Context(), t, doc, splitter.Options{
			OutDir:     outDir,
			PageOffset: offset,
			Logger:     logger,
		})
		if err != nil {
			return err
		}

		logger.Info("split complete", "chapters", len(files), "outdir", outDir)
		return nil
	},
}

func init() {
	splitCmd.Flags().StringVar(&splitPDFPath, "pdf", "", "input PDF path")
	splitCmd.MarkFlagRequired("pdf")
	splitToc.register(splitCmd)
	splitCmd.Flags().StringVar(&splitOutDir, "outdir", "chapters", "output directory for chapter files")
	splitCmd.Flags().IntVar(&splitPageOffset, "page-offset", 0, "offset mapping book pages to PDF pages (book page 1 at PDF page 17 means 16)")

	rootCmd.AddCommand(splitCmd)
}
