package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/brogergvhs/langtally/internal/langcount"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCounts(t *testing.T) *langcount.CountTable {
	t.Helper()
	v, err := langcount.NewVocabulary([]string{"python", "go", "rust"})
	require.NoError(t, err)
	return langcount.Count([]string{"rust and go", "more rust"}, v)
}

func TestWriteCountsPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCounts(&buf, sampleCounts(t), FormatPlain, SortVocab))
	assert.Equal(t, "python: 0\ngo: 1\nrust: 2\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteCounts(&buf, sampleCounts(t), FormatPlain, SortCount))
	assert.Equal(t, "rust: 2\ngo: 1\npython: 0\n", buf.String())
}

func TestWriteCountsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCounts(&buf, sampleCounts(t), FormatTable, SortVocab))

	var rows [][]string
	for _, line := range strings.Split(buf.String(), "\n") {
		if f := strings.Fields(line); len(f) == 2 {
			rows = append(rows, f)
		}
	}

	assert.Equal(t, [][]string{
		{"LANGUAGE", "COUNT"},
		{"python", "0"},
		{"go", "1"},
		{"rust", "2"},
	}, rows)
}

func TestWriteCountsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCounts(&buf, sampleCounts(t), FormatJSON, SortCount))

	var got map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]int{"python": 0, "go": 1, "rust": 2}, got)

	out := buf.String()
	assert.Less(t, strings.Index(out, `"rust"`), strings.Index(out, `"go"`))
	assert.Less(t, strings.Index(out, `"go"`), strings.Index(out, `"python"`))
}

func TestWriteCountsUnknownFormat(t *testing.T) {
	err := WriteCounts(&bytes.Buffer{}, sampleCounts(t), "xml", SortVocab)
	assert.Error(t, err)
}

func TestWriteTitles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTitles(&buf, []string{"one", "two"}))
	assert.Equal(t, "one\ntwo\n", buf.String())
}

func TestValid(t *testing.T) {
	assert.True(t, ValidFormat(FormatJSON))
	assert.False(t, ValidFormat("yaml"))
	assert.True(t, ValidSort(SortCount))
	assert.False(t, ValidSort("alpha"))
}
