package crawl

import "github.com/fwojciec/sitechat/bloom"

// Bloom filter sizing for visited sets.
const (
	defaultExpectedURLs = 10000
	falsePositiveRate   = 0.01
)

// VisitedSet records the normalized URLs of one crawl session. A URL is
// added at most once and never removed. A Bloom filter answers most
// membership tests for unseen URLs; the map makes every answer exact.
//
// VisitedSet is not safe for concurrent use. It belongs to a single Session.
type VisitedSet struct {
	filter *bloom.Filter
	seen   map[string]struct{}
	order  []string
}

// NewVisitedSet creates a VisitedSet sized for about n URLs.
func NewVisitedSet(n uint) *VisitedSet {
	if n == 0 {
		n = defaultExpectedURLs
	}
	return &VisitedSet{
		filter: bloom.NewFilter(n, falsePositiveRate),
		seen:   make(map[string]struct{}),
	}
}

// Contains reports whether url has been added.
func (v *VisitedSet) Contains(url string) bool {
	if !v.filter.Test(url) {
		return false
	}
	_, ok := v.seen[url]
	return ok
}

// Add inserts url and reports whether it was not already present.
func (v *VisitedSet) Add(url string) bool {
	if v.Contains(url) {
		return false
	}
	v.filter.Add(url)
	v.seen[url] = struct{}{}
	v.order = append(v.order, url)
	return true
}

// Len returns the number of URLs in the set.
func (v *VisitedSet) Len() int {
	return len(v.order)
}

// URLs returns the URLs in the order they were added.
func (v *VisitedSet) URLs() []string {
	return append([]string(nil), v.order...)
}
