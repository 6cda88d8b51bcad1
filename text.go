package newsclip

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// CleanText collapses every run of whitespace (including newlines and
// tabs) into a single space and trims the result. It is applied after
// text aggregation, never per node, so multi-node structures normalize as
// one string. CleanText is idempotent. The extractor, the learner and the
// fallback-to-existing-value path all normalize through this one function.
func CleanText(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
