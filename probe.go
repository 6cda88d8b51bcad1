package newsclip

// ProbeResult holds what a rule-free pass over an article page yields:
// the page title and the main content block as HTML.
type ProbeResult struct {
	Title       string
	ContentHTML string
}

// GenericExtractor extracts an article's title and main content from raw
// markup without a scraping rule. It backs the probe workflow that
// bootstraps rules for sites the library does not cover yet.
type GenericExtractor interface {
	ExtractGeneric(markup string) (*ProbeResult, error)
}

// Converter converts HTML to Markdown for human-readable previews.
type Converter interface {
	Convert(html string) (string, error)
}
