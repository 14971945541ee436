// Package rod provides a pagemeta.Fetcher that renders pages in headless
// Chrome, for sites whose metadata is injected by JavaScript.
package rod

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/pagemeta"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default time allowed for navigation and load.
const DefaultFetchTimeout = 15 * time.Second

// Ensure Fetcher implements pagemeta.Fetcher at compile time.
var _ pagemeta.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration

	mu     sync.Mutex
	closed bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML together with
// the URL the browser ended up on.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagemeta.Page, error) {
	f.mu.Lock()
	closed := f.closed
	f.mu.Unlock()
	if closed {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "fetcher is closed")
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, pagemeta.Errorf(classify(err), "fetch %s: %v", url, err)
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EIO, "opening page: %v", err)
	}
	defer page.Close()

	// Set context and deadline for all subsequent operations
	page = page.Context(ctx).Timeout(f.timeout)

	if err := page.Navigate(url); err != nil {
		return nil, pagemeta.Errorf(classify(err), "navigate %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, pagemeta.Errorf(classify(err), "load %s: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, pagemeta.Errorf(classify(err), "read %s: %v", url, err)
	}

	resolved := url
	if info, err := page.Info(); err == nil && info.URL != "" {
		resolved = info.URL
	}

	return &pagemeta.Page{
		URL:         url,
		ResolvedURL: resolved,
		HTML:        html,
	}, nil
}

// Close releases browser resources and terminates the launched process.
// Close is idempotent.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true

	err := f.browser.Close()
	f.launcher.Kill()
	return err
}

// classify maps a browser error to a pagemeta error code.
func classify(err error) string {
	var navErr *rod.NavigationError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return pagemeta.ETIMEOUT
	case errors.As(err, &navErr):
		return pagemeta.ENAVIGATION
	default:
		return pagemeta.EIO
	}
}
