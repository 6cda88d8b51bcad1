package main

import (
	"fmt"

	"github.com/fwojciec/newsclip"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	discoverer := deps.Sitemaps
	if c.Feed {
		discoverer = deps.Feeds
	}

	candidates, err := discoverer.Discover(deps.Ctx, c.Source, c.URL, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	// Seed the seen-set with URLs already in the news table so re-running
	// discover against the same source is idempotent.
	existing, err := deps.News.FindNews(deps.Ctx, newsclip.NewsFilter{Source: &c.Source})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}
	urls := make([]string, 0, len(existing))
	for _, item := range existing {
		urls = append(urls, item.URL)
	}
	deps.Seen.Seed(urls)

	var added, skipped int
	for _, item := range candidates {
		if deps.Seen.Seen(item.URL) {
			skipped++
			continue
		}
		if err := deps.News.CreateNews(deps.Ctx, item); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", item.URL, newsclip.ErrorMessage(err))
			skipped++
			continue
		}
		deps.Seen.Add(item.URL)
		added++
	}

	fmt.Fprintf(deps.Stdout, "Discovered %d candidates: %d added, %d skipped\n",
		len(candidates), added, skipped)
	return nil
}
