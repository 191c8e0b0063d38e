// Package report aggregates repaired superchat records into per-sender
// summaries and renders them as a text table.
package report

import (
	"math"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kurocha/supacha/internal/chatlog"
)

// ChatterSummary aggregates one sender's superchats.
type ChatterSummary struct {
	User     string
	Count    int
	TotalYen float64
}

// Summarize groups records by sender. First-appearance order is preserved
// so highlight ties resolve deterministically.
func Summarize(records []chatlog.Superchat) []ChatterSummary {
	index := make(map[string]int, len(records))
	out := make([]ChatterSummary, 0, len(records))

	for _, rec := range records {
		i, ok := index[rec.User]
		if !ok {
			i = len(out)
			index[rec.User] = i
			out = append(out, ChatterSummary{User: rec.User})
		}

		out[i].Count++
		out[i].TotalYen += rec.Yen
	}

	return out
}

func TotalYen(summaries []ChatterSummary) float64 {
	var total float64
	for _, s := range summaries {
		total += s.TotalYen
	}
	return total
}

// Highlights picks the most generous and the most frequent senders. Ties go
// to whoever appeared first in the chat log.
func Highlights(summaries []ChatterSummary) (generous, frequent ChatterSummary, ok bool) {
	if len(summaries) == 0 {
		return ChatterSummary{}, ChatterSummary{}, false
	}

	generous, frequent = summaries[0], summaries[0]
	for _, s := range summaries[1:] {
		if s.TotalYen > generous.TotalYen {
			generous = s
		}
		if s.Count > frequent.Count {
			frequent = s
		}
	}

	return generous, frequent, true
}

// Percent returns part's share of total, rounded to two decimal places.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(part/total*10000) / 100
}

// Render produces the human-readable report: a per-sender table sorted by
// total yen, then the two highlight lines. top limits the table to the N
// biggest senders (0 = all); width caps the rendered row length (0 = no
// limit). Both are plain formatting parameters, nothing global.
func Render(summaries []ChatterSummary, top, width int) string {
	printer := message.NewPrinter(language.Japanese)

	sorted := make([]ChatterSummary, len(summaries))
	copy(sorted, summaries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalYen > sorted[j].TotalYen
	})

	if top > 0 && top < len(sorted) {
		sorted = sorted[:top]
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"User", "Superchats", "Total"})
	for _, s := range sorted {
		t.AppendRow(table.Row{s.User, s.Count, printer.Sprintf("¥%.0f", s.TotalYen)})
	}
	t.SetStyle(table.StyleRounded)
	if width > 0 {
		t.SetAllowedRowLength(width)
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	total := TotalYen(summaries)
	if generous, frequent, ok := Highlights(summaries); ok {
		b.WriteString(printer.Sprintf("Most generous: %s (¥%.0f, %.2f%% of all superchats)\n",
			generous.User, generous.TotalYen, Percent(generous.TotalYen, total)))
		b.WriteString(printer.Sprintf("Most frequent: %s (%d superchats)\n",
			frequent.User, frequent.Count))
	}

	return b.String()
}
