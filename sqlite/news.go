package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/newsclip"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsclip.NewsService = (*NewsService)(nil)

// NewsService implements newsclip.NewsService using SQLite.
type NewsService struct {
	db *DB
}

// NewNewsService creates a new NewsService.
func NewNewsService(db *DB) *NewsService {
	return &NewsService{db: db}
}

// CreateNews creates a new news item.
func (s *NewsService) CreateNews(ctx context.Context, item *newsclip.NewsItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	item.ID = uuid.New().String()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO news (id, source, url, title, content, content_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.Source, item.URL, item.Title, item.Content, item.ContentHash,
		item.CreatedAt.Format(time.RFC3339), item.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindNewsByID retrieves a news item by ID.
func (s *NewsService) FindNewsByID(ctx context.Context, id string) (*newsclip.NewsItem, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source, url, title, content, content_hash, created_at, updated_at
		FROM news
		WHERE id = ?
	`, id)

	item, err := scanNews(row)
	if err == sql.ErrNoRows {
		return nil, newsclip.Errorf(newsclip.ENOTFOUND, "news item not found")
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

// FindNews retrieves news items matching the filter, newest first.
func (s *NewsService) FindNews(ctx context.Context, filter newsclip.NewsFilter) ([]*newsclip.NewsItem, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, url, title, content, content_hash, created_at, updated_at FROM news WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*newsclip.NewsItem
	for rows.Next() {
		item, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// UpdateNews updates an existing news item.
func (s *NewsService) UpdateNews(ctx context.Context, id string, upd newsclip.NewsUpdate) (*newsclip.NewsItem, error) {
	item, err := s.FindNewsByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		item.Title = *upd.Title
	}
	if upd.Content != nil {
		item.Content = *upd.Content
	}
	if upd.ContentHash != nil {
		item.ContentHash = *upd.ContentHash
	}
	item.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE news SET title = ?, content = ?, content_hash = ?, updated_at = ?
		WHERE id = ?
	`, item.Title, item.Content, item.ContentHash, item.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNews(row scanner) (*newsclip.NewsItem, error) {
	var item newsclip.NewsItem
	var createdAt, updatedAt string

	if err := row.Scan(&item.ID, &item.Source, &item.URL, &item.Title, &item.Content,
		&item.ContentHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var parseErr error
	item.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", parseErr)
	}
	item.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", parseErr)
	}

	return &item, nil
}
