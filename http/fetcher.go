package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/newsdesk"
)

// DefaultFetchTimeout is the default timeout for fetching a news page.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent is sent with every page request. Some portals reject
// clients without a browser-like agent.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// maxPageSize caps how much of a response body is read.
const maxPageSize = 10 << 20

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 2048

// Ensure Fetcher implements newsdesk.Fetcher at compile time.
var _ newsdesk.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML with a single plain GET request. It does not
// execute JavaScript; see the rod package for that.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the timeout for page requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
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

	return f
}

// Fetch retrieves the HTML at url. The request is attempted once; transport
// failures and non-200 responses are returned as EUPSTREAM errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", newsdesk.UpstreamErrorf(newsdesk.Upstream{Service: "source"}, "failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", newsdesk.UpstreamErrorf(newsdesk.Upstream{
			Service: "source",
			Status:  resp.StatusCode,
			Body:    string(body),
		}, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", newsdesk.UpstreamErrorf(newsdesk.Upstream{Service: "source", Status: resp.StatusCode}, "failed to read %s: %v", url, err)
	}

	return string(body), nil
}

// Close is a no-op; http.Client needs no explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
