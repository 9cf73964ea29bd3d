package mock

import (
	"context"
	"time"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sitechat.DomainLimiter.
type DomainLimiter struct {
	WaitFn     func(ctx context.Context, domain string) error
	ThrottleFn func(domain string, interval time.Duration)
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

func (l *DomainLimiter) Throttle(domain string, interval time.Duration) {
	l.ThrottleFn(domain, interval)
}

var _ sitechat.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy is a mock implementation of sitechat.RobotsPolicy.
type RobotsPolicy struct {
	AllowedFn    func(ctx context.Context, url string) bool
	CrawlDelayFn func(ctx context.Context, url string) time.Duration
}

func (p *RobotsPolicy) Allowed(ctx context.Context, url string) bool {
	return p.AllowedFn(ctx, url)
}

func (p *RobotsPolicy) CrawlDelay(ctx context.Context, url string) time.Duration {
	return p.CrawlDelayFn(ctx, url)
}
