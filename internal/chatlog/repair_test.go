package chatlog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func completeRow(left string, comment string) RawRow {
	return RawRow{LeftTexts: []string{left}, Comment: comment, HasComment: true}
}

func triplet(value, user, comment string) []RawRow {
	return []RawRow{
		completeRow(value, ""),
		completeRow(user, wordlessSource),
		completeRow(user, comment),
	}
}

func TestParseNumberMixedCurrency(t *testing.T) {
	// converted cells carry both the original and the yen figure; the
	// trailing parenthesized number is the one that counts
	n, ok := parseNumber("$5.00 (¥750)")
	require.True(t, ok)
	require.Equal(t, 750.0, n)
}

func TestParseNumberPlainYen(t *testing.T) {
	n, ok := parseNumber("500")
	require.True(t, ok)
	require.Equal(t, 500.0, n)
}

func TestParseNumberThousandsSeparator(t *testing.T) {
	n, ok := parseNumber("¥10,000")
	require.True(t, ok)
	require.Equal(t, 10000.0, n)
}

func TestParseNumberNoDigits(t *testing.T) {
	_, ok := parseNumber("free")
	require.False(t, ok)

	_, ok = parseNumber("")
	require.False(t, ok)
}

func TestStripDedupSuffix(t *testing.T) {
	require.Equal(t, "Alice", stripDedupSuffix("Alice(2)"))
	require.Equal(t, "Bob", stripDedupSuffix("Bob"))
	require.Equal(t, "Eve(abc)", stripDedupSuffix("Eve(abc)"))
}

func TestRepairStitchesCommentFromThirdRow(t *testing.T) {
	rows := triplet("¥1,000", "Alice", "great stream!")

	records := Repair(rows)
	require.Len(t, records, 1)
	require.Equal(t, "Alice", records[0].User)
	require.Equal(t, 1000.0, records[0].Yen)
	require.Equal(t, "great stream!", records[0].Comment)
	require.Equal(t, "¥1,000", records[0].OriginalValue)
}

func TestRepairConvertedCurrency(t *testing.T) {
	rows := triplet("", "Alice", "hi")
	rows[0] = RawRow{
		LeftTexts:  []string{"$5.00"},
		RightText:  "$5.00 (¥750)",
		HasRight:   true,
		Comment:    "",
		HasComment: true,
	}

	records := Repair(rows)
	require.Len(t, records, 1)
	require.Equal(t, 750.0, records[0].Yen)
	require.Equal(t, "$5.00", records[0].OriginalValue)
}

func TestRepairPlaceholders(t *testing.T) {
	rows := append(triplet("500", "Alice", wordlessSource), triplet("300", "Bob", "")...)

	records := Repair(rows)
	require.Len(t, records, 2)
	require.Equal(t, WordlessComment, records[0].Comment)
	require.Equal(t, EmoteComment, records[1].Comment)
}

func TestRepairDropsDedupSuffixPerRecord(t *testing.T) {
	rows := append(triplet("500", "Alice(2)", "again"), triplet("300", "Bob", "first")...)

	records := Repair(rows)
	require.Len(t, records, 2)
	require.Equal(t, "Alice", records[0].User)
	require.Equal(t, "Bob", records[1].User)
}

// A malformed triplet must not shift the grouping of the rows after it.
func TestRepairBadTripletDoesNotMisalignRest(t *testing.T) {
	bad := triplet("no digits here", "Mallory", "x")
	rows := append(triplet("100", "Alice", "a"), bad...)
	rows = append(rows, triplet("200", "Bob", "b")...)

	records := Repair(rows)
	require.Len(t, records, 2)
	require.Equal(t, "Alice", records[0].User)
	require.Equal(t, "Bob", records[1].User)
}

func TestRepairIncompleteRowDropsWholeTriplet(t *testing.T) {
	missing := triplet("100", "Alice", "a")
	missing[2].HasComment = false

	rows := append(missing, triplet("200", "Bob", "b")...)

	records := Repair(rows)
	require.Len(t, records, 1)
	require.Equal(t, "Bob", records[0].User)
}

// A trailing two-row group keeps the sender row's own comment.
func TestRepairTrailingPartialTriplet(t *testing.T) {
	rows := []RawRow{
		completeRow("800", ""),
		completeRow("Carol", wordlessSource),
	}

	records := Repair(rows)
	require.Len(t, records, 1)
	require.Equal(t, "Carol", records[0].User)
	require.Equal(t, WordlessComment, records[0].Comment)
}

func TestRepairLoneTrailingRowYieldsNothing(t *testing.T) {
	rows := append(triplet("100", "Alice", "a"), completeRow("999", "stray"))

	records := Repair(rows)
	require.Len(t, records, 1)
	require.Equal(t, "Alice", records[0].User)
}

func TestRepairYenAlwaysNonNegative(t *testing.T) {
	rows := append(triplet("¥1,000", "Alice", "a"), triplet("$2.00 (¥300)", "Bob", "b")...)

	for _, rec := range Repair(rows) {
		require.GreaterOrEqual(t, rec.Yen, 0.0)
	}
}

func TestRepairIsIdempotent(t *testing.T) {
	rows := append(triplet("¥1,000", "Alice(3)", "hello"), triplet("500", "Bob", "")...)

	first := Repair(rows)
	second := Repair(rows)
	require.Equal(t, first, second)
}
