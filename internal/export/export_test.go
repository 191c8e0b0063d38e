package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kurocha/supacha/internal/chatlog"
)

func fixtureRecords() []chatlog.Superchat {
	return []chatlog.Superchat{
		{User: "Alice", Yen: 750, OriginalValue: "$5.00", Comment: "great stream!"},
		{User: "Bob", Yen: 1000, OriginalValue: "¥1,000", Comment: chatlog.WordlessComment},
	}
}

func TestRecordsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, Records(path, FormatCSV, fixtureRecords()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"user", "yen", "original_value", "comment"}, rows[0])
	require.Equal(t, []string{"Alice", "750", "$5.00", "great stream!"}, rows[1])
	require.Equal(t, []string{"Bob", "1000", "¥1,000", chatlog.WordlessComment}, rows[2])
}

func TestRecordsJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")

	require.NoError(t, Records(path, FormatJSONL, fixtureRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var rec recordJSON
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "Alice", rec.User)
	require.Equal(t, 750.0, rec.Yen)
}

func TestRecordsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")

	err := Records(path, "xml", fixtureRecords())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown export format")
}
