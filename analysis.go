package newsclip

import "context"

// Fetcher retrieves raw page markup from URLs.
// Implementations apply a bounded timeout and surface any HTTP, DNS, TLS
// or timeout failure as an EUNAVAILABLE error. Fetches are never retried
// at this level; retry policy belongs to the caller.
type Fetcher interface {
	// Fetch returns the raw markup at url. When headers is non-empty it
	// replaces the implementation's default request headers.
	Fetch(ctx context.Context, url string, headers map[string]string) (string, error)
}

// Extraction holds the result of applying a rule's queries to one page.
// Title and Content are cleaned (whitespace-collapsed and trimmed).
// TitleMatched and ContentMatched report whether the corresponding query
// selected at least one node; when false the text is empty and the caller
// falls back to the news item's pre-existing value.
type Extraction struct {
	Title          string
	TitleMatched   bool
	Content        string
	ContentMatched bool
}

// Extractor applies a rule's title and content queries to page markup.
type Extractor interface {
	Extract(markup string, rule *ScrapingRule) (*Extraction, error)
}

// Learned is a fallback selector that produced usable text.
type Learned struct {
	Query string
	Text  string // cleaned
}

// Learner searches a fixed, ordered list of fallback selectors when a
// rule's own query yields a low-confidence result. The first selector that
// matches at least one node and whose cleaned text is at least
// MinTextLength runes wins; evaluation stops there. A nil result with a
// nil error means the fallback list was exhausted without a qualifying
// match. The learner never proposes a selector that matched zero nodes.
type Learner interface {
	RelearnTitle(markup string) (*Learned, error)
	RelearnContent(markup string) (*Learned, error)
}

// Analysis statuses for a single news item.
const (
	StatusExtracted = "extracted" // rule worked as configured
	StatusRelearned = "relearned" // succeeded via a fallback selector; rule updated
	StatusFailed    = "failed"
)

// ItemResult is the outcome of analyzing one news item. Exactly one of the
// three statuses applies; Error is set only for StatusFailed and carries
// the error code and message.
type ItemResult struct {
	NewsID      string `json:"news_id"`
	Success     bool   `json:"success"`
	Status      string `json:"status"`
	Title       string `json:"title,omitempty"`
	Content     string `json:"content,omitempty"`
	RuleID      string `json:"rule_id,omitempty"`
	RuleUpdated bool   `json:"rule_updated,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Report aggregates a batch run. Results preserve the order of the
// requested ids; one entry per id regardless of individual failures.
type Report struct {
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Results   []ItemResult `json:"results"`
}
