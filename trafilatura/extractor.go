// Package trafilatura provides a pagemeta.Extractor backed by go-trafilatura's
// metadata extraction.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/pagemeta"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements pagemeta.Extractor at compile time.
var _ pagemeta.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to read title and author from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the metadata trafilatura found.
func (e *Extractor) Extract(rawHTML string) (*pagemeta.Fields, error) {
	if rawHTML == "" {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &pagemeta.Fields{
		Title:  strings.TrimSpace(result.Metadata.Title),
		Author: strings.TrimSpace(result.Metadata.Author),
	}, nil
}
