package postcraft

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered blogs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// ContentFetcher turns a blog URL into raw text suitable for Extract.
// Implementations may prefix the text with a TitleMarker line when the
// page title is known.
type ContentFetcher interface {
	FetchContent(ctx context.Context, url string) (raw string, err error)
}
