// Package newsclip extracts clean titles and bodies from news article web
// pages. Each news source has a scraping rule holding CSS selectors for the
// title and content; the pipeline matches a news item to a rule, fetches the
// page, extracts and cleans the text, and when a rule stops producing usable
// results it searches a fixed list of fallback selectors and persists the
// corrected rule back into the library.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package newsclip

import "unicode/utf8"

// MinTextLength is the minimum number of characters (runes) an extracted
// title or content must have to be considered usable. Shorter results are
// low-confidence and trigger the rule learner.
const MinTextLength = 5

// LowConfidence reports whether extracted text fails the minimum-length
// validation gate.
func LowConfidence(s string) bool {
	return utf8.RuneCountInString(s) < MinTextLength
}
