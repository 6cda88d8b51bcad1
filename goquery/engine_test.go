package goquery_test

import (
	"testing"

	"github.com/fwojciec/newsclip/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	t.Run("returns nodes in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<html><body>
			<p id="a">first</p>
			<p id="b">second</p>
		</body></html>`)
		require.NoError(t, err)

		sel := goquery.Select(doc, "p")
		require.Equal(t, 2, sel.Length())
		id, _ := sel.Eq(0).Attr("id")
		assert.Equal(t, "a", id)
		id, _ = sel.Eq(1).Attr("id")
		assert.Equal(t, "b", id)
	})

	t.Run("no match is an empty selection, not an error", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<html><body><p>text</p></body></html>`)
		require.NoError(t, err)

		sel := goquery.Select(doc, "h1.nonexistent")
		assert.Equal(t, 0, sel.Length())
	})

	t.Run("invalid selector behaves like no match", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<html><body><p>text</p></body></html>`)
		require.NoError(t, err)

		sel := goquery.Select(doc, "p[[[")
		assert.Equal(t, 0, sel.Length())
	})
}

func TestTextOf(t *testing.T) {
	t.Parallel()

	t.Run("aggregates nested text in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<html><body>
			<div id="root">one <span>two <em>three</em></span> four</div>
		</body></html>`)
		require.NoError(t, err)

		sel := goquery.Select(doc, "#root")
		require.Equal(t, 1, sel.Length())

		assert.Equal(t, "one two three four", goquery.TextOf(sel.Nodes[0]))
	})

	t.Run("element without text yields empty string", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<html><body><div id="empty"><img src="x.png"></div></body></html>`)
		require.NoError(t, err)

		sel := goquery.Select(doc, "#empty")
		require.Equal(t, 1, sel.Length())

		assert.Equal(t, "", goquery.TextOf(sel.Nodes[0]))
	})
}
