// Package bloom provides the probabilistic pre-filter used by crawl
// sessions to rule out unseen URLs without a map lookup.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom filter over strings.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n keys at the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add inserts key.
func (f *Filter) Add(key string) {
	f.f.AddString(key)
}

// Test reports whether key may have been added. It never reports false
// for a key that was added.
func (f *Filter) Test(key string) bool {
	return f.f.TestString(key)
}

// EstimatedCount returns the approximate number of keys added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
