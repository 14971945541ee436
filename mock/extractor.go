package mock

import "github.com/fwojciec/pagemeta"

var (
	_ pagemeta.Extractor     = (*Extractor)(nil)
	_ pagemeta.FieldResolver = (*FieldResolver)(nil)
)

// Extractor is a mock implementation of pagemeta.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagemeta.Fields, error)
}

func (e *Extractor) Extract(html string) (*pagemeta.Fields, error) {
	return e.ExtractFn(html)
}

// FieldResolver is a mock implementation of pagemeta.FieldResolver.
type FieldResolver struct {
	ResolveFn func(doc pagemeta.Document) pagemeta.Fields
}

func (r *FieldResolver) Resolve(doc pagemeta.Document) pagemeta.Fields {
	return r.ResolveFn(doc)
}
