// Package langcount tallies vocabulary terms among the words of titles.
package langcount

import "strings"

// stripChars are removed from both ends of every token before matching.
// '+' and '#' are deliberately absent so "c++" and "c#" survive.
const stripChars = ".,:;!?()[]{}'\""

// Tokenize splits title on whitespace and normalizes each word. Words made
// only of strip characters are dropped.
func Tokenize(title string) []string {
	fields := strings.Fields(title)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.ToLower(strings.Trim(f, stripChars))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Count returns a table holding, for every term of v, the number of tokens
// across all titles equal to that term.
func Count(titles []string, v Vocabulary) *CountTable {
	t := NewCountTable(v)
	for _, title := range titles {
		for _, w := range Tokenize(title) {
			t.Increment(w)
		}
	}
	return t
}
