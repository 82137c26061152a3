package frontpage

import "context"

// Fetcher retrieves raw HTML from URLs. It is the only component that
// performs network I/O; the extraction core consumes its output as text.
type Fetcher interface {
	// Fetch retrieves the document at url and returns its body as text.
	// The returned error's message is descriptive and suitable for
	// passing through to the response's error field unchanged.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
