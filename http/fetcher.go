// Package http provides the HTTP collaborators around the extraction
// core: the homepage fetcher, the API server, and its middleware.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/frontpage"
)

// DefaultFetchTimeout is the default timeout for homepage requests.
const DefaultFetchTimeout = 10 * time.Second

// userAgent identifies the scraper to the origin site.
const userAgent = "Mozilla/5.0 (compatible; frontpage/1.0)"

// Ensure Fetcher implements frontpage.Fetcher at compile time.
var _ frontpage.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// The homepage is static HTML, so no JavaScript rendering is needed.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the document at the given URL. Failures carry
// EUNAVAILABLE and a descriptive message that passes through to the
// response's error field unchanged.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", frontpage.Errorf(frontpage.EINVALID, "Failed to build request: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", frontpage.Errorf(frontpage.EUNAVAILABLE, "Failed to fetch URL: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", frontpage.Errorf(frontpage.EUNAVAILABLE, "Failed to fetch URL: HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", frontpage.Errorf(frontpage.EUNAVAILABLE, "Failed to read response text: %v", err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
