// Package export serializes repaired superchat records to a row-oriented
// file, one record per line.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kurocha/supacha/internal/chatlog"
)

const (
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
)

func Records(path, format string, records []chatlog.Superchat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create export file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	switch format {
	case FormatCSV:
		return writeCSV(f, records)
	case FormatJSONL:
		return writeJSONL(f, records)
	}

	return fmt.Errorf("unknown export format %q", format)
}

func writeCSV(w io.Writer, records []chatlog.Superchat) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"user", "yen", "original_value", "comment"}); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.User,
			strconv.FormatFloat(r.Yen, 'f', -1, 64),
			r.OriginalValue,
			r.Comment,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type recordJSON struct {
	User          string  `json:"user"`
	Yen           float64 `json:"yen"`
	OriginalValue string  `json:"original_value"`
	Comment       string  `json:"comment"`
}

func writeJSONL(w io.Writer, records []chatlog.Superchat) error {
	enc := json.NewEncoder(w)

	for _, r := range records {
		rec := recordJSON{
			User:          r.User,
			Yen:           r.Yen,
			OriginalValue: r.OriginalValue,
			Comment:       r.Comment,
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}

	return nil
}
