// Package rod fetches pages through headless Chrome so that articles
// rendered by JavaScript can be extracted.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/newsdesk"
	"github.com/go-rod/stealth"
)

// DefaultFetchTimeout bounds navigation and load for a single page.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements newsdesk.Fetcher at compile time.
var _ newsdesk.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using stealth Chrome pages, which hide the
// usual headless fingerprints that news portals block.
type Fetcher struct {
	browser *Browser
	timeout time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the per-page timeout.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBrowser uses an existing Browser instead of launching one.
func WithBrowser(b *Browser) FetcherOption {
	return func(f *Fetcher) {
		f.browser = b
	}
}

// NewFetcher creates a Fetcher, launching Chrome unless WithBrowser is given.
// Returns an error if Chrome cannot be found or started.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}
	if f.browser == nil {
		b, err := NewBrowser()
		if err != nil {
			return nil, err
		}
		f.browser = b
	}
	return f, nil
}

// Fetch navigates to url in a fresh stealth page and returns the HTML once
// the load event fires.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, release, err := f.browser.Acquire()
	if err != nil {
		return "", err
	}
	defer release()

	page, err := stealth.Page(browser)
	if err != nil {
		return "", upstream(ctx, url, err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(f.timeout)

	if err := page.Navigate(url); err != nil {
		return "", upstream(ctx, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", upstream(ctx, url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", upstream(ctx, url, err)
	}
	return html, nil
}

// LauncherPID returns the Chrome launcher process ID.
func (f *Fetcher) LauncherPID() int {
	return f.browser.PID()
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}

func upstream(ctx context.Context, url string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return newsdesk.UpstreamErrorf(newsdesk.Upstream{Service: "source"}, "failed to render %s: %v", url, err)
}
