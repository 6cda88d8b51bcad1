package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/newsclip"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsclip.RuleService = (*RuleService)(nil)

// RuleService implements newsclip.RuleService using SQLite. Library order
// is a stored position column, so FindRules returns rules in a stable
// order that matching can rely on.
type RuleService struct {
	db *DB
}

// NewRuleService creates a new RuleService.
func NewRuleService(db *DB) *RuleService {
	return &RuleService{db: db}
}

// CreateRule creates a new rule at the end of the library.
func (s *RuleService) CreateRule(ctx context.Context, rule *newsclip.ScrapingRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	rule.ID = uuid.New().String()
	now := time.Now().UTC()
	rule.CreatedAt = now
	rule.UpdatedAt = now

	headers, err := marshalHeaders(rule.Headers)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO rules (id, site_name, site_url, title_query, content_query, headers, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM rules), ?, ?)
	`, rule.ID, rule.SiteName, rule.SiteURL, rule.TitleQuery, rule.ContentQuery, headers,
		rule.CreatedAt.Format(time.RFC3339), rule.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	return s.db.QueryRowContext(ctx, `SELECT position FROM rules WHERE id = ?`, rule.ID).Scan(&rule.Position)
}

// FindRuleByID retrieves a rule by ID.
func (s *RuleService) FindRuleByID(ctx context.Context, id string) (*newsclip.ScrapingRule, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, site_name, site_url, title_query, content_query, headers, position, created_at, updated_at
		FROM rules
		WHERE id = ?
	`, id)

	rule, err := scanRule(row)
	if err == sql.ErrNoRows {
		return nil, newsclip.Errorf(newsclip.ENOTFOUND, "rule not found")
	}
	if err != nil {
		return nil, err
	}

	return rule, nil
}

// FindRules returns the full rule library in library order.
func (s *RuleService) FindRules(ctx context.Context) ([]*newsclip.ScrapingRule, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, site_name, site_url, title_query, content_query, headers, position, created_at, updated_at
		FROM rules
		ORDER BY position ASC, created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*newsclip.ScrapingRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// UpdateRule updates an existing rule. This is the single write entry
// point the learner goes through when it persists a corrected query.
func (s *RuleService) UpdateRule(ctx context.Context, id string, upd newsclip.RuleUpdate) (*newsclip.ScrapingRule, error) {
	rule, err := s.FindRuleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.SiteName != nil {
		rule.SiteName = *upd.SiteName
	}
	if upd.SiteURL != nil {
		rule.SiteURL = *upd.SiteURL
	}
	if upd.TitleQuery != nil {
		rule.TitleQuery = *upd.TitleQuery
	}
	if upd.ContentQuery != nil {
		rule.ContentQuery = *upd.ContentQuery
	}
	if upd.Headers != nil {
		rule.Headers = *upd.Headers
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	rule.UpdatedAt = time.Now().UTC()

	headers, err := marshalHeaders(rule.Headers)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE rules SET site_name = ?, site_url = ?, title_query = ?, content_query = ?, headers = ?, updated_at = ?
		WHERE id = ?
	`, rule.SiteName, rule.SiteURL, rule.TitleQuery, rule.ContentQuery, headers,
		rule.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return rule, nil
}

// DeleteRule permanently removes a rule.
func (s *RuleService) DeleteRule(ctx context.Context, id string) error {
	if _, err := s.FindRuleByID(ctx, id); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM rules WHERE id = ?`, id)
	return err
}

func marshalHeaders(headers map[string]string) (string, error) {
	if len(headers) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(headers)
	if err != nil {
		return "", fmt.Errorf("failed to marshal headers: %w", err)
	}
	return string(b), nil
}

func scanRule(row scanner) (*newsclip.ScrapingRule, error) {
	var rule newsclip.ScrapingRule
	var headers, createdAt, updatedAt string

	if err := row.Scan(&rule.ID, &rule.SiteName, &rule.SiteURL, &rule.TitleQuery, &rule.ContentQuery,
		&headers, &rule.Position, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if headers != "" && headers != "{}" {
		if err := json.Unmarshal([]byte(headers), &rule.Headers); err != nil {
			return nil, fmt.Errorf("failed to parse headers: %w", err)
		}
	}

	var parseErr error
	rule.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", parseErr)
	}
	rule.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", parseErr)
	}

	return &rule, nil
}
