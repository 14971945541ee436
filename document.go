package pagemeta

// Element is a single node of a parsed Document.
type Element interface {
	// Attr returns the value of the named attribute, or "" when absent.
	Attr(name string) string

	// Text returns the element's visible text with internal whitespace
	// collapsed.
	Text() string
}

// Document is a parsed, read-only HTML page.
type Document interface {
	// First returns the first element in document order that matches the
	// CSS selector. Returns false when nothing matches or the selector
	// cannot be compiled.
	First(selector string) (Element, bool)

	// Text returns the visible text of the whole document with internal
	// whitespace collapsed.
	Text() string
}

// Parser turns raw HTML into a Document.
type Parser interface {
	Parse(html string) (Document, error)
}
