package goquery

import "github.com/fwojciec/newsclip"

// Ensure Extractor implements newsclip.Extractor at compile time.
var _ newsclip.Extractor = (*Extractor)(nil)

// Extractor applies a rule's title and content queries to page markup.
// For each query the first matching node wins and its aggregated text is
// cleaned. A query that matches nothing (or an empty query) leaves the
// corresponding Matched flag false so the caller can fall back to the news
// item's pre-existing value.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs the rule's queries against the markup.
func (e *Extractor) Extract(markup string, rule *newsclip.ScrapingRule) (*newsclip.Extraction, error) {
	doc, err := Parse(markup)
	if err != nil {
		return nil, err
	}

	var ex newsclip.Extraction

	if rule.TitleQuery != "" {
		if sel := Select(doc, rule.TitleQuery); sel.Length() > 0 {
			ex.Title = newsclip.CleanText(TextOf(sel.Nodes[0]))
			ex.TitleMatched = true
		}
	}

	if rule.ContentQuery != "" {
		if sel := Select(doc, rule.ContentQuery); sel.Length() > 0 {
			ex.Content = newsclip.CleanText(TextOf(sel.Nodes[0]))
			ex.ContentMatched = true
		}
	}

	return &ex, nil
}
