// Package feed provides RSS/Atom-based discovery of candidate news items.
package feed

import (
	"context"

	"github.com/fwojciec/newsclip"
	"github.com/mmcdole/gofeed"
)

// Ensure Discoverer implements newsclip.Discoverer.
var _ newsclip.Discoverer = (*Discoverer)(nil)

// Discoverer reads a site's RSS or Atom feed and returns one candidate
// news item per entry. Feed titles are kept as provisional item titles;
// the analysis pipeline overwrites them with extracted ones.
type Discoverer struct {
	parser *gofeed.Parser
}

// NewDiscoverer creates a feed Discoverer using the given user agent.
func NewDiscoverer(userAgent string) *Discoverer {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	return &Discoverer{parser: parser}
}

// Discover fetches and parses the feed at feedURL. A limit of zero or
// less means no cap. Entries without a link are skipped.
func (d *Discoverer) Discover(ctx context.Context, source, feedURL string, limit int) ([]*newsclip.NewsItem, error) {
	parsed, err := d.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EUNAVAILABLE, "parse feed %s: %v", feedURL, err)
	}

	var items []*newsclip.NewsItem
	for _, entry := range parsed.Items {
		if entry.Link == "" {
			continue
		}
		items = append(items, &newsclip.NewsItem{
			Source: source,
			URL:    entry.Link,
			Title:  entry.Title,
		})
		if limit > 0 && len(items) >= limit {
			break
		}
	}

	return items, nil
}
