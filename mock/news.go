package mock

import (
	"context"

	"github.com/fwojciec/newsclip"
)

var _ newsclip.NewsService = (*NewsService)(nil)

// NewsService is a mock implementation of newsclip.NewsService.
type NewsService struct {
	CreateNewsFn   func(ctx context.Context, item *newsclip.NewsItem) error
	FindNewsByIDFn func(ctx context.Context, id string) (*newsclip.NewsItem, error)
	FindNewsFn     func(ctx context.Context, filter newsclip.NewsFilter) ([]*newsclip.NewsItem, error)
	UpdateNewsFn   func(ctx context.Context, id string, upd newsclip.NewsUpdate) (*newsclip.NewsItem, error)
}

func (s *NewsService) CreateNews(ctx context.Context, item *newsclip.NewsItem) error {
	return s.CreateNewsFn(ctx, item)
}

func (s *NewsService) FindNewsByID(ctx context.Context, id string) (*newsclip.NewsItem, error) {
	return s.FindNewsByIDFn(ctx, id)
}

func (s *NewsService) FindNews(ctx context.Context, filter newsclip.NewsFilter) ([]*newsclip.NewsItem, error) {
	return s.FindNewsFn(ctx, filter)
}

func (s *NewsService) UpdateNews(ctx context.Context, id string, upd newsclip.NewsUpdate) (*newsclip.NewsItem, error) {
	return s.UpdateNewsFn(ctx, id, upd)
}

var _ newsclip.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of newsclip.Discoverer.
type Discoverer struct {
	DiscoverFn func(ctx context.Context, source, locationURL string, limit int) ([]*newsclip.NewsItem, error)
}

func (d *Discoverer) Discover(ctx context.Context, source, locationURL string, limit int) ([]*newsclip.NewsItem, error) {
	return d.DiscoverFn(ctx, source, locationURL, limit)
}
