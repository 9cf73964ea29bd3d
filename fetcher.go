package sitechat

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML for an absolute URL.
	// Network errors, non-success statuses and timeouts are reported as
	// *FetchError. Implementations do not retry.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
