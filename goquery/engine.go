// Package goquery implements the selector engine, content extractor and
// rule learner on top of CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsclip"
	"golang.org/x/net/html"
)

// Parse parses raw markup into a queryable document.
func Parse(markup string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "failed to parse markup: %v", err)
	}
	return doc, nil
}

// Select evaluates a CSS selector against the document and returns the
// matching nodes in document order. An empty selection is a normal outcome,
// not an error; invalid selectors also yield an empty selection.
func Select(doc *goquery.Document, query string) *goquery.Selection {
	return doc.Find(query)
}

// TextOf returns the node's own text plus the text of every descendant,
// concatenated in document order. Nested markup is flattened into one
// string; cleaning is the caller's concern.
func TextOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
