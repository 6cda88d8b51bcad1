package newsclip

import (
	"regexp"
	"strings"
)

// MatchRule selects the scraping rule for a news source name from the rule
// library. Three tiers are tried in strict order; the first tier that
// produces a match wins and later tiers are not evaluated:
//
//  1. Exact: rule site name equals the source, case-sensitive.
//  2. Word-boundary: the rule site name, quoted for literal use, appears
//     as a whole word inside the source, case-insensitive.
//  3. Substring: the rule site name is a case-insensitive substring of
//     the source.
//
// Within a tier the first matching rule in library order wins, so the
// result is deterministic for a given source and rule sequence. Returns
// nil when no tier matches; callers report this as ENORULE rather than
// treating it as a fatal error.
func MatchRule(source string, rules []*ScrapingRule) *ScrapingRule {
	for _, rule := range rules {
		if rule.SiteName == source {
			return rule
		}
	}

	for _, rule := range rules {
		if rule.SiteName == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(rule.SiteName) + `\b`)
		if err != nil {
			continue
		}
		if re.MatchString(source) {
			return rule
		}
	}

	lowerSource := strings.ToLower(source)
	for _, rule := range rules {
		if rule.SiteName == "" {
			continue
		}
		if strings.Contains(lowerSource, strings.ToLower(rule.SiteName)) {
			return rule
		}
	}

	return nil
}
