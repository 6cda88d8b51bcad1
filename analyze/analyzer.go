// Package analyze orchestrates batch analysis of news items: rule
// matching, page fetching, content extraction, validation, rule learning
// and persistence, with bounded concurrency and per-item failure
// isolation.
package analyze

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newsclip"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of items processed at once.
// Fetches are the only blocking step; a small limit avoids hammering
// target sites.
const DefaultConcurrency = 3

// DefaultFetchTimeout bounds a single page fetch.
const DefaultFetchTimeout = 10 * time.Second

// Analyzer drives news items through the extraction pipeline.
type Analyzer struct {
	News      newsclip.NewsService
	Rules     newsclip.RuleService
	Fetcher   newsclip.Fetcher
	Extractor newsclip.Extractor
	Learner   newsclip.Learner

	// RateLimiter, when set, throttles fetches per target domain.
	RateLimiter *DomainLimiter

	Concurrency  int
	FetchTimeout time.Duration

	// LearnContent enables relearning of content queries when extracted
	// content is low-confidence. Title relearning always runs.
	LearnContent bool

	mu        sync.Mutex
	ruleLocks map[string]*sync.Mutex
}

// Run analyzes the given news ids and returns a report with one entry per
// id, in input order. A single item's failure (unknown id, no matching
// rule, fetch error, empty extraction, persistence error) never aborts
// the batch. Cancelling ctx stops dispatching new items; items already
// dispatched finish naturally under the fetch timeout.
func (a *Analyzer) Run(ctx context.Context, ids []string) (*newsclip.Report, error) {
	if len(ids) == 0 {
		return nil, newsclip.Errorf(newsclip.EINVALID, "no news ids given")
	}

	// The rule library is loaded once per batch and treated as immutable
	// for its duration; learned queries are persisted through
	// RuleService.UpdateRule and picked up by the next batch. This keeps
	// matching deterministic within a run and avoids read/write races on
	// shared rules.
	rules, err := a.Rules.FindRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rule library: %w", err)
	}

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]newsclip.ItemResult, len(ids))

	// A plain errgroup, not WithContext: one item's failure must not
	// cancel the others.
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, id := range ids {
		// g.Go blocks while the limit is reached, so this check runs
		// between dispatches and honors cancellation promptly.
		if ctx.Err() != nil {
			results[i] = failure(id, newsclip.Errorf(newsclip.EUNAVAILABLE, "batch cancelled"))
			continue
		}
		g.Go(func() error {
			results[i] = a.processItem(ctx, id, rules)
			return nil
		})
	}
	_ = g.Wait()

	report := &newsclip.Report{Results: results}
	for _, r := range results {
		if r.Success {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}

	return report, nil
}

// processItem runs the full pipeline for one news item.
func (a *Analyzer) processItem(ctx context.Context, id string, rules []*newsclip.ScrapingRule) newsclip.ItemResult {
	item, err := a.News.FindNewsByID(ctx, id)
	if err != nil {
		return failure(id, err)
	}

	rule := newsclip.MatchRule(item.Source, rules)
	if rule == nil {
		return failure(id, newsclip.Errorf(newsclip.ENORULE, "no rule matched source %q", item.Source))
	}

	markup, err := a.fetch(ctx, item.URL, rule.Headers)
	if err != nil {
		return failure(id, err)
	}

	ex, err := a.Extractor.Extract(markup, rule)
	if err != nil {
		return failure(id, err)
	}

	title := ex.Title
	if !ex.TitleMatched {
		title = newsclip.CleanText(item.Title)
	}
	content := ex.Content
	if !ex.ContentMatched {
		content = newsclip.CleanText(item.Content)
	}

	var ruleUpdated bool
	if a.Learner != nil && newsclip.LowConfidence(title) {
		if learned, err := a.Learner.RelearnTitle(markup); err == nil && learned != nil {
			title = learned.Text
			query := learned.Query
			if a.saveRule(ctx, rule.ID, newsclip.RuleUpdate{TitleQuery: &query}) {
				ruleUpdated = true
			}
		}
	}
	if a.Learner != nil && a.LearnContent && newsclip.LowConfidence(content) {
		if learned, err := a.Learner.RelearnContent(markup); err == nil && learned != nil {
			content = learned.Text
			query := learned.Query
			if a.saveRule(ctx, rule.ID, newsclip.RuleUpdate{ContentQuery: &query}) {
				ruleUpdated = true
			}
		}
	}

	// A title-less article is not a usable extraction, learner or not.
	if title == "" {
		return failure(id, newsclip.Errorf(newsclip.EEMPTY, "extraction produced no usable title for %s", item.URL))
	}

	hash := fmt.Sprintf("%016x", xxhash.Sum64String(content))
	if _, err := a.News.UpdateNews(ctx, id, newsclip.NewsUpdate{
		Title:       &title,
		Content:     &content,
		ContentHash: &hash,
	}); err != nil {
		return failure(id, err)
	}

	status := newsclip.StatusExtracted
	if ruleUpdated {
		status = newsclip.StatusRelearned
	}

	return newsclip.ItemResult{
		NewsID:      id,
		Success:     true,
		Status:      status,
		Title:       title,
		Content:     content,
		RuleID:      rule.ID,
		RuleUpdated: ruleUpdated,
	}
}

// fetch applies per-domain rate limiting and the fetch timeout. The fetch
// context is detached from batch cancellation so an in-flight fetch
// completes or times out naturally.
func (a *Analyzer) fetch(ctx context.Context, rawURL string, headers map[string]string) (string, error) {
	if a.RateLimiter != nil {
		if err := a.RateLimiter.Wait(ctx, domainOf(rawURL)); err != nil {
			return "", newsclip.Errorf(newsclip.EUNAVAILABLE, "rate limit wait: %v", err)
		}
	}

	timeout := a.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	return a.Fetcher.Fetch(fctx, rawURL, headers)
}

// saveRule persists a learned query, serializing writes per rule so
// concurrent items relearning the same rule cannot interleave. A failed
// write is reported as false but never fails the item: the extracted
// content stands even when the rule library write was lost. The
// RuleService decorator is expected to log the error.
func (a *Analyzer) saveRule(ctx context.Context, ruleID string, upd newsclip.RuleUpdate) bool {
	lock := a.ruleLock(ruleID)
	lock.Lock()
	defer lock.Unlock()

	_, err := a.Rules.UpdateRule(ctx, ruleID, upd)
	return err == nil
}

func (a *Analyzer) ruleLock(ruleID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ruleLocks == nil {
		a.ruleLocks = make(map[string]*sync.Mutex)
	}
	lock, ok := a.ruleLocks[ruleID]
	if !ok {
		lock = &sync.Mutex{}
		a.ruleLocks[ruleID] = lock
	}
	return lock
}

func failure(id string, err error) newsclip.ItemResult {
	return newsclip.ItemResult{
		NewsID:  id,
		Status:  newsclip.StatusFailed,
		Error:   fmt.Sprintf("%s: %s", newsclip.ErrorCode(err), newsclip.ErrorMessage(err)),
		Success: false,
	}
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
