// Package readability provides a pagemeta.Extractor backed by
// go-shiori/go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/pagemeta"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagemeta.Extractor at compile time.
var _ pagemeta.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to read title and byline from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article title and byline.
func (e *Extractor) Extract(rawHTML string) (*pagemeta.Fields, error) {
	if rawHTML == "" {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &pagemeta.Fields{
		Title:  strings.TrimSpace(article.Title),
		Author: strings.TrimSpace(article.Byline),
	}, nil
}
