package goquery_test

import (
	"testing"

	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewExtractor()

	t.Run("extracts and cleans title and content", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body>
			<h1>  Big   Story  </h1>
			<div class="article-body"><p>First  paragraph.</p>
			<p>Second
			paragraph.</p></div>
		</body></html>`
		rule := &newsclip.ScrapingRule{TitleQuery: "h1", ContentQuery: "div.article-body"}

		ex, err := extractor.Extract(markup, rule)

		require.NoError(t, err)
		assert.True(t, ex.TitleMatched)
		assert.Equal(t, "Big Story", ex.Title)
		assert.True(t, ex.ContentMatched)
		assert.Equal(t, "First paragraph. Second paragraph.", ex.Content)
	})

	t.Run("first matching node wins", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body><h1>Lead Headline</h1><h1>Sidebar Headline</h1></body></html>`
		rule := &newsclip.ScrapingRule{TitleQuery: "h1"}

		ex, err := extractor.Extract(markup, rule)

		require.NoError(t, err)
		assert.Equal(t, "Lead Headline", ex.Title)
	})

	t.Run("query matching nothing leaves matched flag false", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body><p>no headline here</p></body></html>`
		rule := &newsclip.ScrapingRule{TitleQuery: "h1.headline", ContentQuery: "article"}

		ex, err := extractor.Extract(markup, rule)

		require.NoError(t, err)
		assert.False(t, ex.TitleMatched)
		assert.Empty(t, ex.Title)
		assert.False(t, ex.ContentMatched)
		assert.Empty(t, ex.Content)
	})

	t.Run("empty queries never match", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body><h1>Headline</h1></body></html>`
		rule := &newsclip.ScrapingRule{}

		ex, err := extractor.Extract(markup, rule)

		require.NoError(t, err)
		assert.False(t, ex.TitleMatched)
		assert.False(t, ex.ContentMatched)
	})

	t.Run("aggregates nested markup into one cleaned string", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body><h1><span>Breaking:</span> <em>Markets</em>
			rally</h1></body></html>`
		rule := &newsclip.ScrapingRule{TitleQuery: "h1"}

		ex, err := extractor.Extract(markup, rule)

		require.NoError(t, err)
		assert.Equal(t, "Breaking: Markets rally", ex.Title)
	})
}
