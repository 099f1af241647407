// Package report renders scrape results.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/brogergvhs/langtally/internal/langcount"

	"github.com/rodaine/table"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	FormatTable = "table"
	FormatPlain = "plain"
	FormatJSON  = "json"

	SortVocab = "vocab"
	SortCount = "count"
)

func ValidFormat(f string) bool {
	return f == FormatTable || f == FormatPlain || f == FormatJSON
}

func ValidSort(s string) bool {
	return s == SortVocab || s == SortCount
}

// WriteTitles prints one title per line.
func WriteTitles(w io.Writer, titles []string) error {
	for _, t := range titles {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

// WriteCounts prints the table in the given format. Rows follow vocabulary
// order unless order is SortCount.
func WriteCounts(w io.Writer, counts *langcount.CountTable, format, order string) error {
	entries := counts.Entries()
	if order == SortCount {
		entries = counts.ByCount()
	}

	switch format {
	case FormatTable, "":
		tbl := table.New("LANGUAGE", "COUNT").WithWriter(w)
		for _, e := range entries {
			tbl.AddRow(e.Term, e.Count)
		}
		tbl.Print()
		return nil

	case FormatPlain:
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s: %d\n", e.Term, e.Count); err != nil {
				return err
			}
		}
		return nil

	case FormatJSON:
		m := orderedmap.New[string, int]()
		for _, e := range entries {
			m.Set(e.Term, e.Count)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
