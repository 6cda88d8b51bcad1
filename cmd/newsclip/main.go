package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/analyze"
	"github.com/fwojciec/newsclip/bloom"
	"github.com/fwojciec/newsclip/feed"
	"github.com/fwojciec/newsclip/gocache"
	"github.com/fwojciec/newsclip/goquery"
	"github.com/fwojciec/newsclip/htmltomarkdown"
	cliphttp "github.com/fwojciec/newsclip/http"
	clipslog "github.com/fwojciec/newsclip/slog"
	"github.com/fwojciec/newsclip/sqlite"
	"github.com/fwojciec/newsclip/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. When empty, the config's path is used. Set before
	// calling Run() to override (tests use ":memory:").
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsclip"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsclip --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	dbPath := m.DBPath
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set NEWSCLIP_DB to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	deps.DB = m.DB
	deps.News = sqlite.NewNewsService(m.DB)
	deps.Rules = clipslog.NewLoggingRuleService(sqlite.NewRuleService(m.DB), deps.Logger)
	deps.Fetcher = newFetcher(cfg, deps.Logger)

	// Wire command-specific dependencies based on command
	switch cmd {
	case "analyze":
		learnContent := cfg.LearnContent || cli.Analyze.LearnContent
		concurrency := cfg.Concurrency
		if cli.Analyze.Concurrency > 0 {
			concurrency = cli.Analyze.Concurrency
		}
		deps.Analyzer = &analyze.Analyzer{
			News:         deps.News,
			Rules:        deps.Rules,
			Fetcher:      deps.Fetcher,
			Extractor:    goquery.NewExtractor(),
			Learner:      goquery.NewLearner(),
			RateLimiter:  analyze.NewDomainLimiter(cfg.RatePerDomain),
			Concurrency:  concurrency,
			FetchTimeout: cfg.FetchTimeout.Duration(),
			LearnContent: learnContent,
		}

	case "discover":
		userAgent := cfg.UserAgent
		if userAgent == "" {
			userAgent = cliphttp.DefaultHeaders["User-Agent"]
		}
		robots := cliphttp.NewRobots(nil, userAgent)
		deps.Feeds = feed.NewDiscoverer(userAgent)
		deps.Sitemaps = cliphttp.NewSitemapDiscoverer(nil, robots)
		deps.Seen = bloom.NewURLSet(100_000, 0.01)

	case "probe":
		deps.Generic = trafilatura.NewExtractor()
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

// newFetcher builds the fetch stack: HTTP fetcher, logging decorator, and
// an optional TTL cache when the config asks for one.
func newFetcher(cfg Config, logger *slog.Logger) newsclip.Fetcher {
	var opts []cliphttp.Option
	if cfg.FetchTimeout.Duration() > 0 {
		opts = append(opts, cliphttp.WithTimeout(cfg.FetchTimeout.Duration()))
	}
	if cfg.UserAgent != "" {
		headers := make(map[string]string, len(cliphttp.DefaultHeaders))
		for k, v := range cliphttp.DefaultHeaders {
			headers[k] = v
		}
		headers["User-Agent"] = cfg.UserAgent
		opts = append(opts, cliphttp.WithDefaultHeaders(headers))
	}

	var fetcher newsclip.Fetcher = clipslog.NewLoggingFetcher(cliphttp.NewFetcher(opts...), logger)
	if cfg.CacheTTL.Duration() > 0 {
		fetcher = gocache.NewFetcher(fetcher, cfg.CacheTTL.Duration())
	}
	return fetcher
}
