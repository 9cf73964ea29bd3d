package crawl

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/sitechat"
	"golang.org/x/time/rate"
)

var _ sitechat.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests per host with token buckets of burst 1.
// Hosts are compared case-insensitively.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each domain. A non-positive rps leaves domains unlimited until they are
// throttled.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(domain).Wait(ctx)
}

// Throttle lowers the rate for domain to one request per interval, for
// example to honor a robots.txt Crawl-delay. Faster intervals than the
// current rate are ignored.
func (d *DomainLimiter) Throttle(domain string, interval time.Duration) {
	if interval <= 0 {
		return
	}
	l := d.limiter(domain)
	if every := rate.Every(interval); every < l.Limit() {
		l.SetLimit(every)
	}
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	domain = strings.ToLower(domain)

	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[domain]
	if !ok {
		l = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = l
	}
	return l
}
