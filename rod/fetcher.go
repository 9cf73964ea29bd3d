// Package rod fetches pages through headless Chrome so that content
// rendered by JavaScript is included.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/sitechat"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds navigation and load of a single page.
const DefaultFetchTimeout = 10 * time.Second

var _ sitechat.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome. It is safe for concurrent
// use. Close must be called to stop the browser.
type Fetcher struct {
	manager      *browserManager
	timeout      time.Duration
	recycleAfter int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-page timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRecycleAfter sets how many pages are rendered before the browser
// is restarted.
func WithRecycleAfter(n int) Option {
	return func(f *Fetcher) {
		f.recycleAfter = n
	}
}

// NewFetcher launches a headless browser. It fails if Chrome cannot be
// found, downloaded or started.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		recycleAfter: DefaultRecycleAfter,
	}
	for _, opt := range opts {
		opt(f)
	}

	m, err := newBrowserManager(f.recycleAfter)
	if err != nil {
		return nil, err
	}
	f.manager = m
	return f, nil
}

// Fetch navigates to url, waits for the load event and returns the
// rendered HTML. Failures are returned as *sitechat.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &sitechat.FetchError{URL: url, Err: err}
	}

	browser, err := f.manager.acquire()
	if err != nil {
		return "", &sitechat.FetchError{URL: url, Err: err}
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", &sitechat.FetchError{URL: url, Err: err}
	}
	defer page.Close()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", &sitechat.FetchError{URL: url, Err: err}
	}
	if err := page.WaitLoad(); err != nil {
		return "", &sitechat.FetchError{URL: url, Err: err}
	}

	html, err := page.HTML()
	if err != nil {
		return "", &sitechat.FetchError{URL: url, Err: err}
	}
	return html, nil
}

// Close stops the browser. It is safe to call more than once.
func (f *Fetcher) Close() error {
	return f.manager.close()
}
