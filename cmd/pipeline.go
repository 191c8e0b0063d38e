package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kurocha/supacha/internal/chatlog"
	"github.com/kurocha/supacha/internal/config"
	"github.com/kurocha/supacha/internal/ui"
	"github.com/kurocha/supacha/internal/util"

	"go.uber.org/zap"
)

// runPipeline wires the four stages together: fetch, extract, repair. The
// caller decides what to do with the records (report, dump, export).
func runPipeline(ctx context.Context, cfg *config.Config, logger *zap.Logger) ([]chatlog.Superchat, error) {
	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          time.Duration(cfg.TimeoutSeconds) * time.Second,
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		CloudflareBypass: cfg.CloudflareBypass,
		Logger:           logger,
	})
	if err != nil {
		return nil, err
	}

	fetcher := chatlog.NewFetcher(client, logger)

	var progress *ui.FetchProgress
	fetcher.WrapBody = func(total int64, r io.Reader) io.Reader {
		progress = ui.NewFetchProgress("archive", total)
		return progress.Reader(r)
	}

	doc, err := fetcher.Document(ctx, cfg.DefaultURL)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return nil, err
	}

	rows, err := chatlog.ExtractRows(doc, logger)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", cfg.DefaultURL, err)
	}

	records := chatlog.Repair(rows)

	logger.Info("Pipeline finished",
		zap.String("url", cfg.DefaultURL),
		zap.Int("raw_rows", len(rows)),
		zap.Int("records", len(records)))

	return records, nil
}
