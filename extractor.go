package pagemeta

// Fields holds the resolved metadata of a page. An empty string means the
// field could not be resolved.
type Fields struct {
	Title  string
	Author string
}

// FieldResolver resolves the best title and author of a parsed document.
type FieldResolver interface {
	// Resolve never fails; fields that cannot be resolved are left empty.
	Resolve(doc Document) Fields
}

// Extractor derives metadata from raw HTML using a third-party content
// extraction library. It is consulted only for fields the FieldResolver
// left empty.
type Extractor interface {
	Extract(html string) (*Fields, error)
}
