// Package lookup wires fetching, parsing and field resolution into a
// single lookup of one URL.
package lookup

import (
	"context"
	"strings"

	"github.com/fwojciec/pagemeta"
)

// Ensure Service implements pagemeta.LookupService at compile time.
var _ pagemeta.LookupService = (*Service)(nil)

// Service implements pagemeta.LookupService by orchestrating injected
// dependencies. Fallback is optional.
type Service struct {
	Fetcher  pagemeta.Fetcher
	Parser   pagemeta.Parser
	Resolver pagemeta.FieldResolver

	// Fallback fills fields the Resolver left empty.
	Fallback pagemeta.Extractor
}

// Lookup fetches url and resolves its title and author.
func (s *Service) Lookup(ctx context.Context, url string) *pagemeta.Result {
	page, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return pagemeta.NewFailedResult(url, pagemeta.ErrorCode(err))
	}

	doc, err := s.Parser.Parse(page.HTML)
	if err != nil {
		return pagemeta.NewFailedResult(url, pagemeta.ErrorCode(err))
	}

	fields := s.Resolver.Resolve(doc)
	if s.Fallback != nil && (isBlank(fields.Title) || isBlank(fields.Author)) {
		fields = s.fill(fields, page.HTML)
	}

	return pagemeta.NewResult(url, page.ResolvedURL, fields)
}

// fill copies extractor values into blank fields. Extractor failures leave
// the fields untouched.
func (s *Service) fill(fields pagemeta.Fields, html string) pagemeta.Fields {
	extracted, err := s.Fallback.Extract(html)
	if err != nil || extracted == nil {
		return fields
	}
	if isBlank(fields.Title) {
		fields.Title = strings.TrimSpace(extracted.Title)
	}
	if isBlank(fields.Author) {
		fields.Author = strings.TrimSpace(extracted.Author)
	}
	return fields
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
