package mock

import "github.com/fwojciec/pagemeta"

var (
	_ pagemeta.Document = (*Document)(nil)
	_ pagemeta.Element  = (*Element)(nil)
	_ pagemeta.Parser   = (*Parser)(nil)
)

// Document is a mock implementation of pagemeta.Document.
type Document struct {
	FirstFn func(selector string) (pagemeta.Element, bool)
	TextFn  func() string
}

func (d *Document) First(selector string) (pagemeta.Element, bool) {
	return d.FirstFn(selector)
}

func (d *Document) Text() string {
	return d.TextFn()
}

// Element is a mock implementation of pagemeta.Element.
type Element struct {
	AttrFn func(name string) string
	TextFn func() string
}

func (e *Element) Attr(name string) string {
	return e.AttrFn(name)
}

func (e *Element) Text() string {
	return e.TextFn()
}

// Parser is a mock implementation of pagemeta.Parser.
type Parser struct {
	ParseFn func(html string) (pagemeta.Document, error)
}

func (p *Parser) Parse(html string) (pagemeta.Document, error) {
	return p.ParseFn(html)
}
