package resolve

import "github.com/fwojciec/pagemeta"

// TitleProbes returns the title chain in priority order.
func TitleProbes() []Probe {
	return []Probe{
		MetaProperty("og:title"),
		MetaName("twitter:title"),
		ElementText("title"),
		ElementText("h1"),
		MetaName("title"),
	}
}

// AuthorProbes returns the author chain in priority order. The byline
// heuristic is the last resort.
func AuthorProbes() []Probe {
	return []Probe{
		MetaName("author"),
		MetaProperty("article:author"),
		MetaName("byline"),
		Byline,
	}
}

// Title returns the best title of doc, or "" if none is found.
func Title(doc pagemeta.Document) string {
	return FirstNonBlank(doc, TitleProbes())
}

// Author returns the best author of doc, or "" if none is found.
func Author(doc pagemeta.Document) string {
	return FirstNonBlank(doc, AuthorProbes())
}

// Ensure Resolver implements pagemeta.FieldResolver at compile time.
var _ pagemeta.FieldResolver = (*Resolver)(nil)

// Resolver implements pagemeta.FieldResolver with the default chains.
// It holds no state and is safe for concurrent use.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve runs the title and author chains over doc.
func (r *Resolver) Resolve(doc pagemeta.Document) pagemeta.Fields {
	return pagemeta.Fields{
		Title:  Title(doc),
		Author: Author(doc),
	}
}
