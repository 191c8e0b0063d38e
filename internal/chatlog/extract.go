package chatlog

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	containerSelector = "#chatarea"
	rowSelector       = "tr.visible"
	hiddenSelector    = ".hidden"
)

// StructureChangedError signals that the page markup no longer matches the
// selectors this package was written against.
type StructureChangedError struct {
	Message string
}

func (e *StructureChangedError) Error() string {
	return fmt.Sprintf("%s - HTML structure may have changed", e.Message)
}

func IsStructureError(err error) bool {
	_, ok := err.(*StructureChangedError)
	return ok
}

// ExtractRows pulls one RawRow per visible chat row inside the chat area,
// preserving document order. Rows additionally carrying the hidden marker
// are membership events, not superchats, and are excluded outright; they
// share structural ancestry with superchat rows so the marker is the only
// thing telling them apart.
//
// A row missing expected sub-elements still yields a RawRow with absent
// fields; the repair stage decides its fate.
func ExtractRows(doc *goquery.Document, logger *zap.Logger) ([]RawRow, error) {
	rows := make([]RawRow, 0)

	doc.Find(containerSelector).Find(rowSelector).Not(hiddenSelector).Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, extractRow(tr))
	})

	if len(rows) == 0 {
		return nil, &StructureChangedError{Message: "no chat rows found"}
	}

	logger.Debug("Extracted raw rows", zap.Int("rows", len(rows)))

	return rows, nil
}

func extractRow(tr *goquery.Selection) RawRow {
	var row RawRow

	tr.Find("td.align-left").Each(func(_ int, td *goquery.Selection) {
		row.LeftTexts = append(row.LeftTexts, strings.TrimSpace(td.Text()))
	})

	if right := tr.Find("td.align-right"); right.Length() > 0 {
		row.RightText = strings.TrimSpace(right.First().Text())
		row.HasRight = true
	}

	if cell := tr.Find("td.comment"); cell.Length() > 0 {
		row.HasComment = true

		// the site swaps in a styled inline element for commentless
		// superchats; its text wins over the cell's own text
		if inline := cell.First().Find("span"); inline.Length() > 0 {
			row.Comment = strings.TrimSpace(inline.First().Text())
		} else {
			row.Comment = strings.TrimSpace(cell.First().Text())
		}
	}

	return row
}
