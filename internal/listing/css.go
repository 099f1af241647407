package listing

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

const (
	DefaultTitleSelector = "p.title"
	DefaultNextSelector  = "span.next-button"
)

var anchor = cascadia.MustCompile("a")

// CSSParser locates markers with CSS selectors.
type CSSParser struct {
	title cascadia.Selector
	next  cascadia.Selector
}

func NewCSSParser(titleSel, nextSel string) (*CSSParser, error) {
	if titleSel == "" {
		titleSel = DefaultTitleSelector
	}
	if nextSel == "" {
		nextSel = DefaultNextSelector
	}

	title, err := cascadia.Compile(titleSel)
	if err != nil {
		return nil, fmt.Errorf("%w: title %q: %v", ErrInvalidSelector, titleSel, err)
	}
	next, err := cascadia.Compile(nextSel)
	if err != nil {
		return nil, fmt.Errorf("%w: next %q: %v", ErrInvalidSelector, nextSel, err)
	}

	return &CSSParser{title: title, next: next}, nil
}

func (p *CSSParser) Parse(html []byte) Page {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return Page{}
	}

	var page Page

	doc.FindMatcher(p.title).Each(func(_ int, s *goquery.Selection) {
		a := s.FindMatcher(anchor).First()
		if a.Length() == 0 {
			return
		}
		if text := a.Text(); text != "" {
			page.Titles = append(page.Titles, text)
		}
	})

	a := doc.FindMatcher(p.next).First().FindMatcher(anchor).First()
	if href, ok := a.Attr("href"); ok {
		page.NextURL = href
	}

	return page
}
