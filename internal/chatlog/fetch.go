package chatlog

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Fetcher retrieves and parses the archive page. One best-effort attempt,
// no retries, no caching.
type Fetcher struct {
	client *http.Client
	logger *zap.Logger

	// WrapBody, when set, wraps the response body before parsing; used to
	// drive the download progress bar.
	WrapBody func(total int64, r io.Reader) io.Reader
}

func NewFetcher(client *http.Client, logger *zap.Logger) *Fetcher {
	return &Fetcher{client: client, logger: logger}
}

// FetchError reports which URL failed and during which stage of retrieval.
type FetchError struct {
	URL   string
	Stage string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (f *Fetcher) Document(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Stage: "request", Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Stage: "request", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: pageURL, Stage: "status", Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	f.logger.Debug("Downloading archive page",
		zap.String("url", pageURL),
		zap.Int64("content_length", resp.ContentLength))

	var body io.Reader = resp.Body
	if f.WrapBody != nil {
		body = f.WrapBody(resp.ContentLength, resp.Body)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Stage: "parse", Err: err}
	}

	return doc, nil
}
