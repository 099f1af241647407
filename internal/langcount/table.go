package langcount

import (
	"fmt"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry is one row of a CountTable.
type Entry struct {
	Term  string
	Count int
}

// CountTable maps every vocabulary term to its occurrence count. Its key set
// is fixed when the table is built: Increment never adds a key.
type CountTable struct {
	m *orderedmap.OrderedMap[string, int]
}

func NewCountTable(v Vocabulary) *CountTable {
	m := orderedmap.New[string, int]()
	for _, t := range v.terms {
		m.Set(t, 0)
	}
	return &CountTable{m: m}
}

// Increment adds one to term and reports whether term is in the table.
func (t *CountTable) Increment(term string) bool {
	n, ok := t.m.Get(term)
	if !ok {
		return false
	}
	t.m.Set(term, n+1)
	return true
}

func (t *CountTable) Get(term string) (int, bool) {
	return t.m.Get(term)
}

func (t *CountTable) Len() int {
	return t.m.Len()
}

// Total is the sum of all counts.
func (t *CountTable) Total() int {
	total := 0
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		total += p.Value
	}
	return total
}

// Entries returns the rows in vocabulary order.
func (t *CountTable) Entries() []Entry {
	out := make([]Entry, 0, t.m.Len())
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, Entry{Term: p.Key, Count: p.Value})
	}
	return out
}

// ByCount returns the rows ordered by descending count; ties keep
// vocabulary order.
func (t *CountTable) ByCount() []Entry {
	out := t.Entries()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func (t *CountTable) MarshalJSON() ([]byte, error) {
	return t.m.MarshalJSON()
}

// String renders the table as {term: n, ...} in vocabulary order.
func (t *CountTable) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range t.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %d", e.Term, e.Count)
	}
	b.WriteByte('}')
	return b.String()
}
