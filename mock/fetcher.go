package mock

import (
	"context"

	"github.com/fwojciec/newsclip"
)

var _ newsclip.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newsclip.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, headers map[string]string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) (string, error) {
	return f.FetchFn(ctx, url, headers)
}
