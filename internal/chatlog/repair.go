package chatlog

import (
	"regexp"
	"strconv"
	"strings"
)

const tripletSize = 3

var (
	numberRe      = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)
	dedupSuffixRe = regexp.MustCompile(`\([0-9]+\)$`)
)

// Repair merges each triplet of raw rows into one Superchat record.
//
// The source site renders one logical superchat as three consecutive table
// rows: the first carries the amount cells, the second the sender name plus
// a provisional comment, the third a copy of the sender name plus the cell
// holding the real free-text comment when one exists. Rows are chunked into
// triplets by document position before any filtering, so a malformed row can
// only ever invalidate its own triplet, never shift the grouping of the rows
// after it.
func Repair(rows []RawRow) []Superchat {
	out := make([]Superchat, 0, len(rows)/tripletSize)

	for start := 0; start < len(rows); start += tripletSize {
		end := start + tripletSize
		if end > len(rows) {
			end = len(rows)
		}

		if sc, ok := repairTriplet(rows[start:end]); ok {
			out = append(out, sc)
		}
	}

	return out
}

// repairTriplet assembles one record from a group of up to three rows. The
// whole group is discarded when any member misses a required field or the
// amount cannot be reduced to a number. A trailing group of two rows keeps
// the provisional comment from the sender row; a lone trailing row yields
// nothing.
func repairTriplet(group []RawRow) (Superchat, bool) {
	if len(group) < 2 {
		return Superchat{}, false
	}

	for _, r := range group {
		if !r.HasComment || len(r.LeftTexts) == 0 {
			return Superchat{}, false
		}
	}

	amount, sender := group[0], group[1]

	yen, ok := resolveYen(amount)
	if !ok {
		return Superchat{}, false
	}

	comment := sender.Comment
	if len(group) == tripletSize {
		comment = group[2].Comment
	}

	return Superchat{
		OriginalValue: amount.LeftTexts[0],
		Yen:           yen,
		User:          stripDedupSuffix(sender.LeftTexts[0]),
		Comment:       substitutePlaceholder(comment),
	}, true
}

// resolveYen computes the JPY value of the amount row: the right-aligned
// cell holds the converted figure for foreign-currency superchats; without
// it the left cell is already denominated in yen.
func resolveYen(row RawRow) (float64, bool) {
	if row.HasRight {
		return parseNumber(row.RightText)
	}
	return parseNumber(row.LeftTexts[0])
}

// parseNumber reduces a display string to its trailing numeric run.
// Converted cells look like "$5.00 (¥750)" where only the parenthesized yen
// figure is wanted, so the last run wins. Thousands separators are dropped.
func parseNumber(s string) (float64, bool) {
	matches := numberRe.FindAllString(s, -1)
	if len(matches) == 0 {
		return 0, false
	}

	n, err := strconv.ParseFloat(strings.ReplaceAll(matches[len(matches)-1], ",", ""), 64)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// stripDedupSuffix removes the "(2)" style counter the site appends to
// repeat senders within one page. It is not part of the identity.
func stripDedupSuffix(user string) string {
	return dedupSuffixRe.ReplaceAllString(user, "")
}

func substitutePlaceholder(comment string) string {
	switch comment {
	case wordlessSource:
		return WordlessComment
	case "":
		// custom graphical emotes have no extractable text
		return EmoteComment
	}

	return comment
}
