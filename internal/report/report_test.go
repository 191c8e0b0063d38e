package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kurocha/supacha/internal/chatlog"
)

func fixtureSummaries() []ChatterSummary {
	return []ChatterSummary{
		{User: "A", Count: 2, TotalYen: 1000},
		{User: "B", Count: 1, TotalYen: 5000},
		{User: "C", Count: 3, TotalYen: 500},
	}
}

func TestSummarizeGroupsInFirstAppearanceOrder(t *testing.T) {
	records := []chatlog.Superchat{
		{User: "A", Yen: 400},
		{User: "B", Yen: 5000},
		{User: "A", Yen: 600},
		{User: "C", Yen: 100},
		{User: "C", Yen: 200},
		{User: "C", Yen: 200},
	}

	got := Summarize(records)
	require.Equal(t, []ChatterSummary{
		{User: "A", Count: 2, TotalYen: 1000},
		{User: "B", Count: 1, TotalYen: 5000},
		{User: "C", Count: 3, TotalYen: 500},
	}, got)
}

func TestHighlights(t *testing.T) {
	generous, frequent, ok := Highlights(fixtureSummaries())
	require.True(t, ok)
	require.Equal(t, "B", generous.User)
	require.Equal(t, 5000.0, generous.TotalYen)
	require.Equal(t, "C", frequent.User)
	require.Equal(t, 3, frequent.Count)
}

func TestHighlightsTieGoesToFirstSeen(t *testing.T) {
	generous, frequent, ok := Highlights([]ChatterSummary{
		{User: "X", Count: 2, TotalYen: 100},
		{User: "Y", Count: 2, TotalYen: 100},
	})
	require.True(t, ok)
	require.Equal(t, "X", generous.User)
	require.Equal(t, "X", frequent.User)
}

func TestHighlightsEmpty(t *testing.T) {
	_, _, ok := Highlights(nil)
	require.False(t, ok)
}

func TestPercent(t *testing.T) {
	require.Equal(t, 76.92, Percent(5000, 6500))
	require.Equal(t, 0.0, Percent(10, 0))
	require.Equal(t, 100.0, Percent(500, 500))
}

func TestRender(t *testing.T) {
	out := Render(fixtureSummaries(), 0, 0)

	require.Contains(t, out, "Most generous: B")
	require.Contains(t, out, "76.92%")
	require.Contains(t, out, "Most frequent: C (3 superchats)")

	// table sorted by total: B first
	require.Less(t, strings.Index(out, "B"), strings.Index(out, "A"))
}

func TestRenderTopLimitsTableOnly(t *testing.T) {
	out := Render(fixtureSummaries(), 1, 0)

	// only B makes the table, but the highlights still cover everyone
	require.NotContains(t, out, "¥1,000")
	require.Contains(t, out, "Most frequent: C (3 superchats)")
}
