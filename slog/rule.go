package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsclip"
)

// Ensure LoggingRuleService implements newsclip.RuleService.
var _ newsclip.RuleService = (*LoggingRuleService)(nil)

// LoggingRuleService wraps a RuleService and logs rule writes. Reads
// delegate silently; writes are the interesting events, in particular
// learner updates that fail and would otherwise be swallowed by the
// batch pipeline.
type LoggingRuleService struct {
	next   newsclip.RuleService
	logger *slog.Logger
}

// NewLoggingRuleService creates a new LoggingRuleService.
func NewLoggingRuleService(next newsclip.RuleService, logger *slog.Logger) *LoggingRuleService {
	return &LoggingRuleService{next: next, logger: logger}
}

// CreateRule delegates to the wrapped service and logs the operation.
func (s *LoggingRuleService) CreateRule(ctx context.Context, rule *newsclip.ScrapingRule) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("rule create",
			"site", rule.SiteName,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRule(ctx, rule)
}

// FindRuleByID delegates to the wrapped service.
func (s *LoggingRuleService) FindRuleByID(ctx context.Context, id string) (*newsclip.ScrapingRule, error) {
	return s.next.FindRuleByID(ctx, id)
}

// FindRules delegates to the wrapped service.
func (s *LoggingRuleService) FindRules(ctx context.Context) ([]*newsclip.ScrapingRule, error) {
	return s.next.FindRules(ctx)
}

// UpdateRule delegates to the wrapped service and logs the operation. A
// failed write here is the only trace a lost learner update leaves.
func (s *LoggingRuleService) UpdateRule(ctx context.Context, id string, upd newsclip.RuleUpdate) (rule *newsclip.ScrapingRule, err error) {
	defer func(begin time.Time) {
		s.logger.Info("rule update",
			"id", id,
			"title_query", updated(upd.TitleQuery),
			"content_query", updated(upd.ContentQuery),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateRule(ctx, id, upd)
}

// DeleteRule delegates to the wrapped service and logs the operation.
func (s *LoggingRuleService) DeleteRule(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("rule delete",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRule(ctx, id)
}

func updated(q *string) string {
	if q == nil {
		return "(unchanged)"
	}
	return *q
}
