package sitechat

import (
	"context"
	"time"
)

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error

	// Throttle slows requests to domain to at most one per interval.
	// It never speeds a domain up.
	Throttle(domain string, interval time.Duration)
}

// RobotsPolicy decides whether a URL may be crawled.
type RobotsPolicy interface {
	// Allowed reports whether the site's robots rules permit fetching url.
	// Sites without readable rules allow everything.
	Allowed(ctx context.Context, url string) bool

	// CrawlDelay returns the delay the site asks for between requests,
	// or zero.
	CrawlDelay(ctx context.Context, url string) time.Duration
}
