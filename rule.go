package newsclip

import (
	"context"
	"time"
)

// ScrapingRule holds the extraction selectors for one news site.
// SiteName is the matching key; it is not required to be unique, matching
// resolves ties by library order (see MatchRule). TitleQuery and
// ContentQuery are CSS selectors. Headers, when non-empty, replace the
// fetcher's default request headers for this site.
//
// Rules are administered externally (CLI, probe tool); the rule learner is
// the only component that mutates a rule in place, and it does so through
// RuleService.UpdateRule exclusively.
type ScrapingRule struct {
	ID           string            `json:"id"`
	SiteName     string            `json:"siteName"`
	SiteURL      string            `json:"siteUrl"`
	TitleQuery   string            `json:"titleQuery"`
	ContentQuery string            `json:"contentQuery"`
	Headers      map[string]string `json:"headers,omitempty"`

	// Position orders the rule library. Order is part of the matching
	// contract: earlier rules win ties within a matching tier.
	Position int `json:"position"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the rule contains invalid fields.
func (r *ScrapingRule) Validate() error {
	if r.SiteName == "" {
		return Errorf(EINVALID, "rule site name required")
	}
	if r.TitleQuery == "" && r.ContentQuery == "" {
		return Errorf(EINVALID, "rule requires a title or content query")
	}
	return nil
}

// RuleService represents a service for managing the scraping rule library.
type RuleService interface {
	// CreateRule creates a new rule at the end of the library.
	CreateRule(ctx context.Context, rule *ScrapingRule) error

	// FindRuleByID retrieves a rule by ID.
	// Returns ENOTFOUND if the rule does not exist.
	FindRuleByID(ctx context.Context, id string) (*ScrapingRule, error)

	// FindRules returns the full rule library in library order.
	// The order is stable across calls and is an input to MatchRule.
	FindRules(ctx context.Context) ([]*ScrapingRule, error)

	// UpdateRule updates an existing rule.
	// Returns ENOTFOUND if the rule does not exist.
	UpdateRule(ctx context.Context, id string, upd RuleUpdate) (*ScrapingRule, error)

	// DeleteRule permanently removes a rule.
	// Returns ENOTFOUND if the rule does not exist.
	DeleteRule(ctx context.Context, id string) error
}

// RuleUpdate represents fields that can be updated on a rule.
type RuleUpdate struct {
	SiteName     *string            `json:"siteName"`
	SiteURL      *string            `json:"siteUrl"`
	TitleQuery   *string            `json:"titleQuery"`
	ContentQuery *string            `json:"contentQuery"`
	Headers      *map[string]string `json:"headers"`
}
