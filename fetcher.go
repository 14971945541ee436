package pagemeta

import "context"

// Page is a successfully fetched web page.
type Page struct {
	// URL is the URL that was requested.
	URL string

	// ResolvedURL is the final URL after redirects.
	ResolvedURL string

	// HTML is the page body decoded to UTF-8.
	HTML string
}

// Fetcher retrieves web pages.
type Fetcher interface {
	// Fetch retrieves the page at url, following redirects.
	// Failures are returned as *Error values whose Code classifies the
	// failure (ETIMEOUT, EHTTPSTATUS, ...).
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
