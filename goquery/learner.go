package goquery

import (
	"unicode/utf8"

	"github.com/fwojciec/newsclip"
)

// TitleFallbacks is the ordered selector list the learner tries when a
// rule's title query stops producing usable text. Order is part of the
// observable behavior: the first selector that matches at least one node
// and yields cleaned text of at least newsclip.MinTextLength runes wins.
var TitleFallbacks = []string{
	"h1[class*=title]",
	"h2[class*=headline]",
	"h1[id*=title], h2[id*=title], h3[id*=title]",
	"title",
}

// ContentFallbacks is the ordered selector list for relearning content
// queries, under the same win condition as TitleFallbacks.
var ContentFallbacks = []string{
	"article",
	"div[class*=article-body]",
	"div[class*=article]",
	"div[class*=content]",
	"div[id*=content]",
	"main",
}

// Ensure Learner implements newsclip.Learner at compile time.
var _ newsclip.Learner = (*Learner)(nil)

// Learner searches the fallback selector lists for a replacement query.
type Learner struct {
	titleFallbacks   []string
	contentFallbacks []string
}

// Option configures a Learner.
type Option func(*Learner)

// WithTitleFallbacks replaces the default title fallback list.
func WithTitleFallbacks(queries []string) Option {
	return func(l *Learner) {
		l.titleFallbacks = queries
	}
}

// WithContentFallbacks replaces the default content fallback list.
func WithContentFallbacks(queries []string) Option {
	return func(l *Learner) {
		l.contentFallbacks = queries
	}
}

// NewLearner creates a Learner with the default fallback lists.
func NewLearner(opts ...Option) *Learner {
	l := &Learner{
		titleFallbacks:   TitleFallbacks,
		contentFallbacks: ContentFallbacks,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RelearnTitle searches the title fallback list.
// A nil result with a nil error means the list was exhausted.
func (l *Learner) RelearnTitle(markup string) (*newsclip.Learned, error) {
	return relearn(markup, l.titleFallbacks)
}

// RelearnContent searches the content fallback list.
func (l *Learner) RelearnContent(markup string) (*newsclip.Learned, error) {
	return relearn(markup, l.contentFallbacks)
}

func relearn(markup string, fallbacks []string) (*newsclip.Learned, error) {
	doc, err := Parse(markup)
	if err != nil {
		return nil, err
	}

	for _, query := range fallbacks {
		sel := Select(doc, query)
		if sel.Length() == 0 {
			continue
		}
		text := newsclip.CleanText(TextOf(sel.Nodes[0]))
		if utf8.RuneCountInString(text) >= newsclip.MinTextLength {
			return &newsclip.Learned{Query: query, Text: text}, nil
		}
	}

	return nil, nil
}
