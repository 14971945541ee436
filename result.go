package pagemeta

import (
	"context"
	"strings"
)

// Result is the outcome of looking up a single URL.
//
// Error is set if and only if the page could not be fetched, in which case
// ResolvedURL, Title and Author are all empty. Empty fields are omitted when
// encoded as JSON.
type Result struct {
	InputURL    string `json:"inputUrl"`
	ResolvedURL string `json:"resolvedUrl,omitempty"`
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	Error       string `json:"error,omitempty"`
}

// NewResult returns the result of a successful fetch. Blank fields are
// dropped; the rest are trimmed.
func NewResult(inputURL, resolvedURL string, fields Fields) *Result {
	return &Result{
		InputURL:    inputURL,
		ResolvedURL: resolvedURL,
		Title:       strings.TrimSpace(fields.Title),
		Author:      strings.TrimSpace(fields.Author),
	}
}

// NewFailedResult returns the result of a failed fetch classified as kind.
func NewFailedResult(inputURL, kind string) *Result {
	return &Result{
		InputURL: inputURL,
		Error:    kind,
	}
}

// Failed reports whether the result describes a failed fetch.
func (r *Result) Failed() bool {
	return r.Error != ""
}

// LookupService fetches a URL and resolves its metadata.
type LookupService interface {
	// Lookup always returns a result. Fetch failures are reported in
	// Result.Error rather than as a Go error.
	Lookup(ctx context.Context, url string) *Result
}
