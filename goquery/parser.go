// Package goquery implements pagemeta.Parser on top of PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// Ensure types implement pagemeta interfaces at compile time.
var (
	_ pagemeta.Parser   = (*Parser)(nil)
	_ pagemeta.Document = (*Document)(nil)
	_ pagemeta.Element  = (*Element)(nil)
)

// Parser parses HTML into goquery-backed documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html into a Document.
func (p *Parser) Parse(html string) (pagemeta.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document wraps a goquery.Document. It is never mutated after parsing.
type Document struct {
	doc *goquery.Document
}

// First returns the first element in document order matching selector.
// Invalid selectors match nothing.
func (d *Document) First(selector string) (pagemeta.Element, bool) {
	m, ok := compile(selector)
	if !ok {
		return nil, false
	}
	sel := d.doc.FindMatcher(m).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &Element{sel: sel}, true
}

// Text returns the visible text of the whole document.
func (d *Document) Text() string {
	return visibleText(d.doc.Nodes)
}

// Element wraps a single-node goquery.Selection.
type Element struct {
	sel *goquery.Selection
}

// Attr returns the attribute value, or "" when it is absent.
func (e *Element) Attr(name string) string {
	return e.sel.AttrOr(name, "")
}

// Text returns the element's visible text.
func (e *Element) Text() string {
	return visibleText(e.sel.Nodes)
}
