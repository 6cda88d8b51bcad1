package newsclip

import (
	"context"
	"time"
)

// NewsItem represents a single news record. Items are created by an
// ingestion process (feed or sitemap discovery, or manual entry); the
// analysis pipeline overwrites Title and Content when extraction succeeds
// and never deletes items. Source and URL are immutable once created.
type NewsItem struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"` // free-text publisher name used for rule matching
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the news item contains invalid fields.
func (n *NewsItem) Validate() error {
	if n.Source == "" {
		return Errorf(EINVALID, "news source required")
	}
	if n.URL == "" {
		return Errorf(EINVALID, "news URL required")
	}
	return nil
}

// NewsService represents a service for managing news items.
type NewsService interface {
	// CreateNews creates a new news item.
	CreateNews(ctx context.Context, item *NewsItem) error

	// FindNewsByID retrieves a news item by ID.
	// Returns ENOTFOUND if the item does not exist.
	FindNewsByID(ctx context.Context, id string) (*NewsItem, error)

	// FindNews retrieves news items matching the filter.
	FindNews(ctx context.Context, filter NewsFilter) ([]*NewsItem, error)

	// UpdateNews updates an existing news item.
	// Returns ENOTFOUND if the item does not exist.
	UpdateNews(ctx context.Context, id string, upd NewsUpdate) (*NewsItem, error)
}

// Discoverer finds candidate news items for ingestion from a site's feed
// or sitemap. Discovered items carry Source and URL (and Title when the
// feed provides one); persistence and deduplication are the caller's
// concern.
type Discoverer interface {
	Discover(ctx context.Context, source, locationURL string, limit int) ([]*NewsItem, error)
}

// NewsFilter represents a filter for FindNews.
type NewsFilter struct {
	ID     *string `json:"id"`
	Source *string `json:"source"`
	URL    *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// NewsUpdate represents fields that can be updated on a news item.
type NewsUpdate struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	ContentHash *string `json:"contentHash"`
}
