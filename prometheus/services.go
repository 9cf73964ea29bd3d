package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.Fetcher = (*Fetcher)(nil)

// Fetcher counts and times fetches made by the wrapped Fetcher.
type Fetcher struct {
	next    sitechat.Fetcher
	metrics *Metrics
}

// NewFetcher wraps next.
func NewFetcher(next sitechat.Fetcher, m *Metrics) *Fetcher {
	return &Fetcher{next: next, metrics: m}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.metrics.FetchDuration.Observe(time.Since(begin).Seconds())
		f.metrics.FetchesTotal.WithLabelValues(status(err)).Inc()
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.next.Close()
}

var _ sitechat.Completer = (*Completer)(nil)

// Completer counts and times completion calls.
type Completer struct {
	next    sitechat.Completer
	metrics *Metrics
}

// NewCompleter wraps next.
func NewCompleter(next sitechat.Completer, m *Metrics) *Completer {
	return &Completer{next: next, metrics: m}
}

func (c *Completer) Complete(ctx context.Context, system, user string) (answer string, err error) {
	defer func(begin time.Time) {
		c.metrics.CompletionLatency.Observe(time.Since(begin).Seconds())
		c.metrics.CompletionsTotal.WithLabelValues(status(err)).Inc()
	}(time.Now())
	return c.next.Complete(ctx, system, user)
}

var _ sitechat.TextExtractor = (*TextExtractor)(nil)

// TextExtractor counts document extractions.
type TextExtractor struct {
	next    sitechat.TextExtractor
	metrics *Metrics
}

// NewTextExtractor wraps next.
func NewTextExtractor(next sitechat.TextExtractor, m *Metrics) *TextExtractor {
	return &TextExtractor{next: next, metrics: m}
}

func (e *TextExtractor) Extract(ctx context.Context, path string) (text string, err error) {
	defer func() {
		e.metrics.ExtractionsTotal.WithLabelValues(status(err)).Inc()
	}()
	return e.next.Extract(ctx, path)
}
