package listing

import (
	"bytes"
	"fmt"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
)

// Class tests match whole words of the class attribute, the way CSS does.
const (
	DefaultTitleXPath = `//p[contains(concat(" ", normalize-space(@class), " "), " title ")]`
	DefaultNextXPath  = `//span[contains(concat(" ", normalize-space(@class), " "), " next-button ")]`
)

var anchorXPath = xpath.MustCompile(".//a")

// XPathParser locates markers with XPath expressions.
type XPathParser struct {
	title *xpath.Expr
	next  *xpath.Expr
}

func NewXPathParser(titleExpr, nextExpr string) (*XPathParser, error) {
	if titleExpr == "" {
		titleExpr = DefaultTitleXPath
	}
	if nextExpr == "" {
		nextExpr = DefaultNextXPath
	}

	title, err := xpath.Compile(titleExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: title %q: %v", ErrInvalidSelector, titleExpr, err)
	}
	next, err := xpath.Compile(nextExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: next %q: %v", ErrInvalidSelector, nextExpr, err)
	}

	return &XPathParser{title: title, next: next}, nil
}

func (p *XPathParser) Parse(html []byte) (page Page) {
	// xpath panics on expressions that do not yield node-sets
	defer func() {
		if recover() != nil {
			page = Page{}
		}
	}()

	doc, err := htmlquery.Parse(bytes.NewReader(html))
	if err != nil {
		return Page{}
	}

	for _, n := range htmlquery.QuerySelectorAll(doc, p.title) {
		a := htmlquery.QuerySelector(n, anchorXPath)
		if a == nil {
			continue
		}
		if text := htmlquery.InnerText(a); text != "" {
			page.Titles = append(page.Titles, text)
		}
	}

	if n := htmlquery.QuerySelector(doc, p.next); n != nil {
		if a := htmlquery.QuerySelector(n, anchorXPath); a != nil {
			page.NextURL = htmlquery.SelectAttr(a, "href")
		}
	}

	return page
}
