package mock

import "github.com/fwojciec/newsclip"

var _ newsclip.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsclip.Extractor.
type Extractor struct {
	ExtractFn func(markup string, rule *newsclip.ScrapingRule) (*newsclip.Extraction, error)
}

func (e *Extractor) Extract(markup string, rule *newsclip.ScrapingRule) (*newsclip.Extraction, error) {
	return e.ExtractFn(markup, rule)
}

var _ newsclip.Learner = (*Learner)(nil)

// Learner is a mock implementation of newsclip.Learner.
type Learner struct {
	RelearnTitleFn   func(markup string) (*newsclip.Learned, error)
	RelearnContentFn func(markup string) (*newsclip.Learned, error)
}

func (l *Learner) RelearnTitle(markup string) (*newsclip.Learned, error) {
	return l.RelearnTitleFn(markup)
}

func (l *Learner) RelearnContent(markup string) (*newsclip.Learned, error) {
	return l.RelearnContentFn(markup)
}
