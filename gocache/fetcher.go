// Package gocache provides a TTL-caching decorator for newsclip.Fetcher,
// so re-running a batch within the cache window does not re-download
// unchanged pages.
package gocache

import (
	"context"
	"time"

	"github.com/fwojciec/newsclip"
	cache "github.com/patrickmn/go-cache"
)

// Ensure Fetcher implements newsclip.Fetcher at compile time.
var _ newsclip.Fetcher = (*Fetcher)(nil)

// Fetcher caches successful fetches by URL. Errors are never cached, so a
// transient failure does not poison subsequent attempts.
type Fetcher struct {
	next newsclip.Fetcher
	c    *cache.Cache
}

// NewFetcher wraps next with a TTL cache. Expired entries are purged at
// the same interval.
func NewFetcher(next newsclip.Fetcher, ttl time.Duration) *Fetcher {
	return &Fetcher{
		next: next,
		c:    cache.New(ttl, ttl),
	}
}

// Fetch returns the cached markup for url when present, delegating to the
// wrapped fetcher otherwise.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) (string, error) {
	if v, ok := f.c.Get(url); ok {
		return v.(string), nil
	}

	markup, err := f.next.Fetch(ctx, url, headers)
	if err != nil {
		return "", err
	}

	f.c.SetDefault(url, markup)
	return markup, nil
}
