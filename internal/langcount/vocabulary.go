package langcount

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrEmptyTerm     = errors.New("empty vocabulary term")
	ErrDuplicateTerm = errors.New("duplicate vocabulary term")
	ErrUnmatchable   = errors.New("vocabulary term can never match a token")
)

// DefaultLanguages is the vocabulary used when no override is configured,
// in output order.
var DefaultLanguages = []string{
	"javascript", "html", "css", "sql", "python", "typescript", "java",
	"c#", "c++", "php", "c", "powershell", "go", "rust", "kotlin", "dart", "ruby",
}

// Vocabulary is an ordered set of distinct lowercase terms. The zero value
// is empty and usable.
type Vocabulary struct {
	terms []string
}

// NewVocabulary lowercases and validates terms. Terms must be distinct after
// lowercasing, free of whitespace and must not start or end with a
// character that tokenization strips, since such terms could never match.
func NewVocabulary(terms []string) (Vocabulary, error) {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))

	for _, raw := range terms {
		t := strings.ToLower(strings.TrimSpace(raw))
		if t == "" {
			return Vocabulary{}, ErrEmptyTerm
		}
		if strings.IndexFunc(t, unicode.IsSpace) >= 0 || strings.Trim(t, stripChars) != t {
			return Vocabulary{}, fmt.Errorf("%w: %q", ErrUnmatchable, raw)
		}
		if seen[t] {
			return Vocabulary{}, fmt.Errorf("%w: %q", ErrDuplicateTerm, t)
		}
		seen[t] = true
		out = append(out, t)
	}

	return Vocabulary{terms: out}, nil
}

func DefaultVocabulary() Vocabulary {
	v, err := NewVocabulary(DefaultLanguages)
	if err != nil {
		panic(err)
	}
	return v
}

// Terms returns a copy of the terms in definition order.
func (v Vocabulary) Terms() []string {
	return append([]string(nil), v.terms...)
}

func (v Vocabulary) Len() int {
	return len(v.terms)
}

func (v Vocabulary) Contains(term string) bool {
	for _, t := range v.terms {
		if t == term {
			return true
		}
	}
	return false
}
