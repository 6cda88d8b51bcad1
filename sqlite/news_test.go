package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsService_CreateNews(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and timestamps", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewNewsService(mustOpenDB(t))
		item := &newsclip.NewsItem{
			Source: "Example News",
			URL:    "https://example.com/story/1",
			Title:  "Provisional title",
		}

		require.NoError(t, s.CreateNews(context.Background(), item))
		assert.NotEmpty(t, item.ID)
		assert.False(t, item.CreatedAt.IsZero())
	})

	t.Run("rejects item without source", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewNewsService(mustOpenDB(t))
		err := s.CreateNews(context.Background(), &newsclip.NewsItem{URL: "https://example.com/x"})

		require.Error(t, err)
		assert.Equal(t, newsclip.EINVALID, newsclip.ErrorCode(err))
	})
}

func TestNewsService_FindNewsByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a created item", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewNewsService(mustOpenDB(t))
		ctx := context.Background()
		item := &newsclip.NewsItem{
			Source:  "Example News",
			URL:     "https://example.com/story/1",
			Title:   "Provisional title",
			Content: "Provisional content",
		}
		require.NoError(t, s.CreateNews(ctx, item))

		got, err := s.FindNewsByID(ctx, item.ID)

		require.NoError(t, err)
		assert.Equal(t, item.Source, got.Source)
		assert.Equal(t, item.URL, got.URL)
		assert.Equal(t, item.Title, got.Title)
		assert.Equal(t, item.Content, got.Content)
	})

	t.Run("unknown id is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewNewsService(mustOpenDB(t))
		_, err := s.FindNewsByID(context.Background(), "nope")

		require.Error(t, err)
		assert.Equal(t, newsclip.ENOTFOUND, newsclip.ErrorCode(err))
	})
}

func TestNewsService_FindNews(t *testing.T) {
	t.Parallel()

	t.Run("filters by source and url", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewNewsService(mustOpenDB(t))
		ctx := context.Background()
		require.NoError(t, s.CreateNews(ctx, &newsclip.NewsItem{Source: "A", URL: "https://a.example/1"}))
		require.NoError(t, s.CreateNews(ctx, &newsclip.NewsItem{Source: "A", URL: "https://a.example/2"}))
		require.NoError(t, s.CreateNews(ctx, &newsclip.NewsItem{Source: "B", URL: "https://b.example/1"}))

		source := "A"
		items, err := s.FindNews(ctx, newsclip.NewsFilter{Source: &source})
		require.NoError(t, err)
		assert.Len(t, items, 2)

		url := "https://b.example/1"
		items, err = s.FindNews(ctx, newsclip.NewsFilter{URL: &url})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "B", items[0].Source)
	})

	t.Run("limit and offset page through items", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewNewsService(mustOpenDB(t))
		ctx := context.Background()
		for range 5 {
			require.NoError(t, s.CreateNews(ctx, &newsclip.NewsItem{Source: "A", URL: "https://a.example/x"}))
		}

		items, err := s.FindNews(ctx, newsclip.NewsFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, items, 2)

		items, err = s.FindNews(ctx, newsclip.NewsFilter{Limit: 2, Offset: 4})
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestNewsService_UpdateNews(t *testing.T) {
	t.Parallel()

	t.Run("overwrites title, content and hash", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewNewsService(mustOpenDB(t))
		ctx := context.Background()
		item := &newsclip.NewsItem{Source: "Example News", URL: "https://example.com/1", Title: "old"}
		require.NoError(t, s.CreateNews(ctx, item))

		title, content, hash := "Extracted Headline", "Extracted body.", "deadbeefdeadbeef"
		updated, err := s.UpdateNews(ctx, item.ID, newsclip.NewsUpdate{
			Title: &title, Content: &content, ContentHash: &hash,
		})

		require.NoError(t, err)
		assert.Equal(t, title, updated.Title)

		got, err := s.FindNewsByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, title, got.Title)
		assert.Equal(t, content, got.Content)
		assert.Equal(t, hash, got.ContentHash)
		// Source and URL are immutable.
		assert.Equal(t, "Example News", got.Source)
		assert.Equal(t, "https://example.com/1", got.URL)
	})

	t.Run("unknown id is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewNewsService(mustOpenDB(t))
		title := "x"
		_, err := s.UpdateNews(context.Background(), "nope", newsclip.NewsUpdate{Title: &title})

		require.Error(t, err)
		assert.Equal(t, newsclip.ENOTFOUND, newsclip.ErrorCode(err))
	})
}
