package cmd

import (
	"context"
	"fmt"

	"github.com/kurocha/supacha/internal/config"
	"github.com/kurocha/supacha/internal/export"
	"github.com/kurocha/supacha/internal/report"
	"github.com/kurocha/supacha/internal/ui"

	"github.com/spf13/cobra"
)

var (
	// selection
	flagURL string

	// report shape
	flagTop    int
	flagWidth  int
	flagDryRun bool

	// optional record dump alongside the report
	flagExportPath string
	flagFormat     string

	// headers/auth
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string
	flagTimeout    int
)

func init() {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Scrape a superchat log page and print the aggregate report. Uses the defaults from the selected config, overwritten by CLI flags",
		RunE:  runReport,
	}

	// selection
	reportCmd.Flags().StringVar(&flagURL, "url", "", "stream archive page URL")

	// report shape
	reportCmd.Flags().IntVar(&flagTop, "top", 0, "limit the per-user table to the N biggest senders")
	reportCmd.Flags().IntVar(&flagWidth, "width", 0, "maximum report row width (0 = no limit)")
	reportCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print the repaired records, skip the report")

	// export
	reportCmd.Flags().StringVar(&flagExportPath, "export", "", "also write the records to this file")
	reportCmd.Flags().StringVar(&flagFormat, "format", "", "record format: csv or jsonl")

	// headers/auth
	reportCmd.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	reportCmd.Flags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	reportCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	reportCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "fetch timeout in seconds")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig:   flagIgnoreConfig,
		Debug:          flagDebug,
		DefaultURL:     flagURL,
		Top:            flagTop,
		ExportPath:     flagExportPath,
		ExportFormat:   flagFormat,
		Cookie:         flagCookie,
		CookieFile:     flagCookieFile,
		UserAgent:      flagUserAgent,
		TimeoutSeconds: flagTimeout,
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

	if flagDryRun {
		fmt.Printf("Dry-run: %d records repaired.\n\n", len(records))
		for i, rec := range records {
			fmt.Printf("%3d) %s  ¥%.0f [%s]\n     %s\n", i+1, rec.User, rec.Yen, rec.OriginalValue, rec.Comment)
		}
		return nil
	}

	summaries := report.Summarize(records)
	fmt.Println(report.Render(summaries, cfg.Top, flagWidth))

	if cfg.ExportPath != "" {
		if err := export.Records(cfg.ExportPath, cfg.ExportFormat, records); err != nil {
			return err
		}
		fmt.Printf("Records written to %s (%s)\n", cfg.ExportPath, cfg.ExportFormat)
	}

	return nil
}
