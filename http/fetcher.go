// Package http provides an HTTP-based implementation of pagemeta.Fetcher.
package http

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/pagemeta"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent identifies the fetcher to servers.
const DefaultUserAgent = "MetaExtractor/1.0 (+https://example.com)"

// MaxBodyBytes caps how much of a response body is read. Longer bodies are
// truncated; title and author signals live near the top of a page.
const MaxBodyBytes = 10 << 20

// Ensure Fetcher implements pagemeta.Fetcher at compile time.
var _ pagemeta.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML pages using HTTP GET requests, following
// redirects. It does not execute JavaScript.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	userAgent  string
	browserTLS bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests, including redirects and
// reading the body.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
// Defaults to DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithBrowserTLS makes HTTPS connections present a browser TLS fingerprint
// instead of Go's, for sites that reject non-browser clients.
func WithBrowserTLS() Option {
	return func(f *Fetcher) {
		f.browserTLS = true
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}
	if f.browserTLS {
		f.client.Transport = newBrowserTransport(f.timeout)
	}

	return f
}

// Fetch retrieves the page at rawURL and decodes it to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*pagemeta.Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EMALFORMEDURL, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, pagemeta.Errorf(pagemeta.EMALFORMEDURL, "only http and https URLs are supported: %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EMALFORMEDURL, "invalid URL %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, pagemeta.Errorf(classify(err), "fetch %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, pagemeta.Errorf(pagemeta.EHTTPSTATUS, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isHTMLContentType(contentType) {
		return nil, pagemeta.Errorf(pagemeta.EUNSUPPORTEDMIMETYPE, "unsupported content type %q for %s", contentType, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, pagemeta.Errorf(classify(err), "read %s: %v", rawURL, err)
	}

	return &pagemeta.Page{
		URL:         rawURL,
		ResolvedURL: resp.Request.URL.String(),
		HTML:        decode(body, contentType),
	}, nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// decode converts body to UTF-8 using the charset from the Content-Type
// header or the document's own meta tags. Falls back to the raw bytes when
// the charset cannot be handled.
func decode(body []byte, contentType string) string {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return string(body)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}

// isHTMLContentType reports whether a response of the given Content-Type can
// be parsed as HTML. A missing Content-Type is accepted.
func isHTMLContentType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch {
	case strings.HasPrefix(mediaType, "text/"):
		return true
	case mediaType == "application/xml", mediaType == "application/xhtml+xml":
		return true
	case strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+xml"):
		return true
	}
	return false
}
