package mock

import (
	"context"

	"github.com/fwojciec/newsclip"
)

var _ newsclip.RuleService = (*RuleService)(nil)

// RuleService is a mock implementation of newsclip.RuleService.
type RuleService struct {
	CreateRuleFn   func(ctx context.Context, rule *newsclip.ScrapingRule) error
	FindRuleByIDFn func(ctx context.Context, id string) (*newsclip.ScrapingRule, error)
	FindRulesFn    func(ctx context.Context) ([]*newsclip.ScrapingRule, error)
	UpdateRuleFn   func(ctx context.Context, id string, upd newsclip.RuleUpdate) (*newsclip.ScrapingRule, error)
	DeleteRuleFn   func(ctx context.Context, id string) error
}

func (s *RuleService) CreateRule(ctx context.Context, rule *newsclip.ScrapingRule) error {
	return s.CreateRuleFn(ctx, rule)
}

func (s *RuleService) FindRuleByID(ctx context.Context, id string) (*newsclip.ScrapingRule, error) {
	return s.FindRuleByIDFn(ctx, id)
}

func (s *RuleService) FindRules(ctx context.Context) ([]*newsclip.ScrapingRule, error) {
	return s.FindRulesFn(ctx)
}

func (s *RuleService) UpdateRule(ctx context.Context, id string, upd newsclip.RuleUpdate) (*newsclip.ScrapingRule, error) {
	return s.UpdateRuleFn(ctx, id, upd)
}

func (s *RuleService) DeleteRule(ctx context.Context, id string) error {
	return s.DeleteRuleFn(ctx, id)
}
