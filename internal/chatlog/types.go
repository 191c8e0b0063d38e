// Package chatlog extracts superchat records from a fan-maintained chat log
// page. The source site renders one logical superchat as three consecutive
// table rows with misaligned fields; this package scrapes the raw rows and
// repairs them into clean records.
package chatlog

// RawRow is one table row as scraped, before triplet repair. A missing
// field is modeled explicitly since absence carries meaning downstream.
type RawRow struct {
	LeftTexts []string

	// converted yen figure; absent means the superchat was already in JPY
	RightText string
	HasRight  bool

	Comment    string
	HasComment bool
}

// Superchat is the repaired logical record, one per raw-row triplet.
// Immutable once produced.
type Superchat struct {
	OriginalValue string
	Yen           float64
	User          string
	Comment       string
}

// Comment placeholders substituted during repair.
const (
	WordlessComment = "wordless superchat"
	EmoteComment    = "Member emote"

	// literal the source site prints for superchats sent without text
	wordlessSource = "無言スパチャ"
)
