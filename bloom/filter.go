// Package bloom provides a probabilistic seen-URL set used by discovery
// to skip news items that were already ingested.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// URLSet tracks URLs that have been seen. False positives are possible
// (a new URL may be skipped), false negatives are not, which is the right
// trade-off for deduplicating ingestion.
type URLSet struct {
	f *bloom.BloomFilter
}

// NewURLSet creates a URL set sized for n expected URLs with the given
// false positive rate.
func NewURLSet(n uint, fpRate float64) *URLSet {
	return &URLSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seed adds a batch of known URLs, typically the URLs already present in
// the news table.
func (s *URLSet) Seed(urls []string) {
	for _, u := range urls {
		s.f.AddString(u)
	}
}

// Add marks a URL as seen.
func (s *URLSet) Add(url string) {
	s.f.AddString(url)
}

// Seen returns true if the URL might have been seen before.
func (s *URLSet) Seen(url string) bool {
	return s.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the set.
func (s *URLSet) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
