package main

import (
	"fmt"

	"github.com/fwojciec/newsclip"
)

// Run executes the "news list" command.
func (c *NewsListCmd) Run(deps *Dependencies) error {
	filter := newsclip.NewsFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	items, err := deps.News.FindNews(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No news items found. Use 'newsclip news add' or 'newsclip discover' to create some.")
		return nil
	}

	for _, item := range items {
		title := item.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", item.ID, item.Source, title, item.URL)
	}

	return nil
}

// Run executes the "news add" command.
func (c *NewsAddCmd) Run(deps *Dependencies) error {
	item := &newsclip.NewsItem{
		Source: c.Source,
		URL:    c.URL,
		Title:  c.Title,
	}

	if err := deps.News.CreateNews(deps.Ctx, item); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added news item %s (%s)\n", item.ID, c.URL)
	return nil
}

// Run executes the "news show" command.
func (c *NewsShowCmd) Run(deps *Dependencies) error {
	item, err := deps.News.FindNewsByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:      %s\n", item.ID)
	fmt.Fprintf(deps.Stdout, "Source:  %s\n", item.Source)
	fmt.Fprintf(deps.Stdout, "URL:     %s\n", item.URL)
	fmt.Fprintf(deps.Stdout, "Title:   %s\n", item.Title)
	if item.ContentHash != "" {
		fmt.Fprintf(deps.Stdout, "Hash:    %s\n", item.ContentHash)
	}
	if item.Content != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", item.Content)
	}

	return nil
}
