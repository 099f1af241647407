package listing

import (
	"errors"
	"fmt"
)

var ErrInvalidSelector = errors.New("invalid selector")

// Page is what one listing page yields. An empty NextURL means the page is
// the last one.
type Page struct {
	Titles  []string
	NextURL string
}

func (p Page) HasNext() bool {
	return p.NextURL != ""
}

// Parser turns raw HTML into a Page. Implementations must not fail on
// malformed or unexpected markup; missing elements yield an empty Page.
type Parser interface {
	Parse(html []byte) Page
}

const (
	KindCSS   = "css"
	KindXPath = "xpath"
)

// Schema names the markers a Parser looks for. Empty fields fall back to
// the old.reddit.com listing markup for the chosen kind.
type Schema struct {
	Kind  string
	Title string
	Next  string
}

// New builds the Parser described by s.
func New(s Schema) (Parser, error) {
	switch s.Kind {
	case "", KindCSS:
		return NewCSSParser(s.Title, s.Next)
	case KindXPath:
		return NewXPathParser(s.Title, s.Next)
	default:
		return nil, fmt.Errorf("unknown parser kind %q (want %s or %s)", s.Kind, KindCSS, KindXPath)
	}
}
