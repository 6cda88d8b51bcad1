package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/analyze"
	"github.com/fwojciec/newsclip/bloom"
	"github.com/fwojciec/newsclip/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB    *sqlite.DB
	News  newsclip.NewsService
	Rules newsclip.RuleService

	Fetcher  newsclip.Fetcher
	Analyzer *analyze.Analyzer

	// Discovery: feed-based and sitemap-based candidate sources, plus the
	// seen-URL set used to skip items already ingested.
	Feeds    newsclip.Discoverer
	Sitemaps newsclip.Discoverer
	Seen     *bloom.URLSet

	// Probe: rule-free extraction and markdown preview.
	Generic   newsclip.GenericExtractor
	Converter newsclip.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to YAML config file" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Analyze  AnalyzeCmd  `cmd:"" help:"Run news items through the scraping rule library"`
	News     NewsCmd     `cmd:"" help:"Manage news items"`
	Rules    RulesCmd    `cmd:"" help:"Manage scraping rules"`
	Discover DiscoverCmd `cmd:"" help:"Ingest candidate news items from a feed or sitemap"`
	Probe    ProbeCmd    `cmd:"" help:"Suggest scraping queries for an un-ruled URL"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	IDs          []string `arg:"" help:"News item ids to analyze"`
	Concurrency  int      `short:"c" help:"Concurrent item limit (overrides config)"`
	LearnContent bool     `help:"Relearn content queries for low-confidence extractions"`
}

// NewsCmd groups the news item subcommands.
type NewsCmd struct {
	List NewsListCmd `cmd:"" help:"List news items"`
	Add  NewsAddCmd  `cmd:"" help:"Add a news item"`
	Show NewsShowCmd `cmd:"" help:"Show one news item in full"`
}

// NewsListCmd is the "news list" subcommand.
type NewsListCmd struct {
	Source string `short:"s" help:"Filter by source name"`
	Limit  int    `short:"n" default:"20" help:"Maximum items to list"`
}

// NewsAddCmd is the "news add" subcommand.
type NewsAddCmd struct {
	Source string `arg:"" help:"Source name, matched against rule site names"`
	URL    string `arg:"" help:"Article URL"`
	Title  string `help:"Provisional title"`
}

// NewsShowCmd is the "news show" subcommand.
type NewsShowCmd struct {
	ID string `arg:"" help:"News item id"`
}

// RulesCmd groups the scraping rule subcommands.
type RulesCmd struct {
	List   RulesListCmd   `cmd:"" help:"List rules in library order"`
	Add    RulesAddCmd    `cmd:"" help:"Add a rule at the end of the library"`
	Delete RulesDeleteCmd `cmd:"" help:"Delete a rule"`
}

// RulesListCmd is the "rules list" subcommand.
type RulesListCmd struct{}

// RulesAddCmd is the "rules add" subcommand.
type RulesAddCmd struct {
	SiteName     string            `arg:"" help:"Site name, matched against news sources"`
	SiteURL      string            `help:"Site base URL"`
	TitleQuery   string            `help:"CSS selector for the article title"`
	ContentQuery string            `help:"CSS selector for the article body"`
	Header       map[string]string `short:"H" help:"Request header (repeatable, key=value)"`
}

// RulesDeleteCmd is the "rules delete" subcommand.
type RulesDeleteCmd struct {
	ID    string `arg:"" help:"Rule id"`
	Force bool   `help:"Confirm deletion"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	Source string `arg:"" help:"Source name for the ingested items"`
	URL    string `arg:"" help:"Feed URL or site URL"`
	Feed   bool   `help:"Treat the URL as an RSS/Atom feed instead of a site sitemap"`
	Limit  int    `short:"n" default:"50" help:"Maximum items to ingest"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	URL  string `arg:"" help:"Article URL to probe"`
	Site string `help:"Site name for the created rule (required with --save)"`
	Save bool   `help:"Create a rule from the suggested queries"`
}
