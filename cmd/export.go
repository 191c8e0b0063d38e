package cmd

import (
	"context"
	"fmt"

	"github.com/kurocha/supacha/internal/config"
	"github.com/kurocha/supacha/internal/export"
	"github.com/kurocha/supacha/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagExportURL    string
	flagExportOut    string
	flagExportAs     string
	flagExportCookie string
	flagExportUA     string
)

func init() {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Scrape a superchat log page and write the records to a file, one record per line",
		RunE:  runExport,
	}

	exportCmd.Flags().StringVar(&flagExportURL, "url", "", "stream archive page URL")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "output file (default superchats.<format>)")
	exportCmd.Flags().StringVar(&flagExportAs, "format", "", "record format: csv or jsonl")
	exportCmd.Flags().StringVar(&flagExportCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	exportCmd.Flags().StringVar(&flagExportUA, "user-agent", "", "override User-Agent")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		DefaultURL:   flagExportURL,
		ExportPath:   flagExportOut,
		ExportFormat: flagExportAs,
		Cookie:       flagExportCookie,
		UserAgent:    flagExportUA,
	})
	if err != nil {
		return err
	}

	logger := ui.NewLogger(cfg.Debug)
	defer func() { _ = logger.Sync() }()

	if usedPath != "" {
		fmt.Printf("Config file: %s\n\n", usedPath)
	}

	if cfg.DefaultURL == "" {
		return fmt.Errorf("missing --url and no default_url in config")
	}

	records, err := runPipeline(context.Background(), cfg, logger)
	if err != nil {
		return err
	}

	out := cfg.ExportPath
	if out == "" {
		out = "superchats." + cfg.ExportFormat
	}

	if err := export.Records(out, cfg.ExportFormat, records); err != nil {
		return err
	}

	fmt.Printf("%d records written to %s (%s)\n", len(records), out, cfg.ExportFormat)
	return nil
}
