// Package trafilatura provides rule-free article extraction backed by
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/newsclip"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements newsclip.GenericExtractor at compile time.
var _ newsclip.GenericExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull an article's title and main
// content out of a page without a scraping rule.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractGeneric processes raw markup and returns the article title and
// main content block.
func (e *Extractor) ExtractGeneric(markup string) (*newsclip.ProbeResult, error) {
	if markup == "" {
		return nil, newsclip.Errorf(newsclip.EINVALID, "empty markup input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(markup), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &newsclip.ProbeResult{
		Title:       newsclip.CleanText(result.Metadata.Title),
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
