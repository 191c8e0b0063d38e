package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// FetchProgress renders a byte-progress bar for the single archive page
// download. Total may be unknown (-1) when the server omits Content-Length.
type FetchProgress struct {
	p     *mpb.Progress
	bar   *mpb.Bar
	start time.Time
}

func NewFetchProgress(label string, total int64) *FetchProgress {
	fp := &FetchProgress{
		p: mpb.New(
			mpb.WithWidth(52),
			mpb.WithOutput(os.Stdout),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
		start: time.Now(),
	}

	if total < 0 {
		total = 0
	}

	fp.bar = fp.p.New(
		total,
		mpb.BarStyle().Rbound("]"),

		mpb.PrependDecorators(
			decor.Name(label+"  "),
		),

		mpb.AppendDecorators(
			decor.Any(func(s decor.Statistics) string {
				return human(s.Current)
			}),
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" | %ds", int(time.Since(fp.start).Seconds()))
			}),
		),
	)

	return fp
}

// Reader wraps the response body so every read advances the bar.
func (fp *FetchProgress) Reader(r io.Reader) io.Reader {
	return fp.bar.ProxyReader(r)
}

func (fp *FetchProgress) Finish() {
	fp.bar.SetTotal(-1, true)
	fp.p.Wait()
}

func human(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.2f GB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
