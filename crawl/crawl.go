// Package crawl walks a website depth-first from a root URL and collects
// the text of every same-origin page it reaches.
package crawl

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/sitechat"
)

// DefaultMaxPages bounds a walk when Crawler.MaxPages is zero.
const DefaultMaxPages = 1000

// Crawler performs sequential depth-first crawls.
type Crawler struct {
	Fetcher sitechat.Fetcher
	Parser  sitechat.PageParser

	// RateLimiter and Robots are optional.
	RateLimiter sitechat.DomainLimiter
	Robots      sitechat.RobotsPolicy

	// MaxPages caps the number of URLs visited per session.
	MaxPages int

	// MaxDepth caps the link distance from the root. Zero means no limit.
	MaxDepth int

	Logger *slog.Logger
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type    ProgressType
	URL     string
	Visited int
	Pending int
	Error   error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl walks the site reachable from rootURL and returns the session.
// Pages that fail to fetch are recorded in the session and skipped. The
// only error is an invalid root URL; a canceled context returns the
// partial session.
func (c *Crawler) Crawl(ctx context.Context, rootURL string) (*Session, error) {
	return c.CrawlWithProgress(ctx, rootURL, nil)
}

// CrawlWithProgress is like Crawl but reports progress to fn.
func (c *Crawler) CrawlWithProgress(ctx context.Context, rootURL string, fn ProgressFunc) (*Session, error) {
	root, err := sitechat.NormalizeURL(rootURL)
	if err != nil {
		return nil, err
	}
	s := NewSession(root, uint(c.maxPages()))
	c.walk(ctx, s, root, fn)
	return s, nil
}

// ContinueSession walks from rawURL using an existing session, so that
// pages the session already visited are not fetched again and new text is
// appended to the session's buffer.
func (c *Crawler) ContinueSession(ctx context.Context, s *Session, rawURL string) error {
	if s == nil {
		return sitechat.Errorf(sitechat.EINVALID, "session required")
	}
	start, err := sitechat.NormalizeURL(rawURL)
	if err != nil {
		return err
	}
	c.walk(ctx, s, start, nil)
	return nil
}

func (c *Crawler) walk(ctx context.Context, s *Session, start string, progress ProgressFunc) {
	logger := c.logger()
	maxPages := c.maxPages()
	s.Canceled = false

	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	progress(ProgressEvent{Type: ProgressStarted, URL: start})

	var stack frontier
	stack.push(target{url: start})

	for {
		if ctx.Err() != nil {
			s.Canceled = true
			break
		}
		if s.Visited.Len() >= maxPages {
			logger.Info("page limit reached", "session", s.ID, "max_pages", maxPages, "pending", stack.len())
			break
		}

		t, ok := stack.pop()
		if !ok {
			break
		}
		if !s.Visited.Add(t.url) {
			continue
		}

		if c.Robots != nil && !c.Robots.Allowed(ctx, t.url) {
			err := sitechat.Errorf(sitechat.EINVALID, "disallowed by robots.txt")
			s.addFailure(t.url, err)
			logger.Info("skip page", "url", t.url, "reason", "robots")
			continue
		}

		if c.RateLimiter != nil {
			if c.Robots != nil {
				if delay := c.Robots.CrawlDelay(ctx, t.url); delay > 0 {
					c.RateLimiter.Throttle(host(t.url), delay)
				}
			}
			if err := c.RateLimiter.Wait(ctx, host(t.url)); err != nil {
				s.Canceled = true
				break
			}
		}

		html, err := c.Fetcher.Fetch(ctx, t.url)
		if err != nil {
			if ctx.Err() != nil {
				s.Canceled = true
				break
			}
			err = asFetchError(t.url, err)
			s.addFailure(t.url, err)
			logger.Warn("fetch failed", "url", t.url, "depth", t.depth, "err", err)
			progress(ProgressEvent{Type: ProgressFailed, URL: t.url, Visited: s.Visited.Len(), Pending: stack.len(), Error: err})
			continue
		}

		page, links := c.Parser.Parse(html, t.url)
		if page == nil {
			page = &sitechat.PageText{URL: t.url}
		}
		s.addPage(t, html, page)

		if c.MaxDepth <= 0 || t.depth < c.MaxDepth {
			stack.pushLinks(unvisited(s.Visited, links), t.depth+1)
		}
		progress(ProgressEvent{Type: ProgressCompleted, URL: t.url, Visited: s.Visited.Len(), Pending: stack.len()})
	}

	s.Finished = time.Now()
	logger.Info("crawl finished",
		"session", s.ID,
		"root", s.RootURL,
		"pages", len(s.Pages),
		"failures", len(s.Failures),
		"chars", sitechat.RuneLen(s.Text()),
		"canceled", s.Canceled,
		"duration", s.Duration(),
	)
	progress(ProgressEvent{Type: ProgressFinished, Visited: s.Visited.Len(), Pending: stack.len()})
}

func (c *Crawler) maxPages() int {
	if c.MaxPages <= 0 {
		return DefaultMaxPages
	}
	return c.MaxPages
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// unvisited normalizes links and drops invalid ones and those the session
// has already visited. Links visited later, while earlier siblings are
// explored, are skipped when popped.
func unvisited(visited *VisitedSet, links []string) []string {
	out := make([]string, 0, len(links))
	for _, link := range links {
		n, err := sitechat.NormalizeURL(link)
		if err != nil || visited.Contains(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func asFetchError(rawURL string, err error) error {
	var fe *sitechat.FetchError
	if errors.As(err, &fe) {
		return err
	}
	return &sitechat.FetchError{URL: rawURL, Err: err}
}

func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
