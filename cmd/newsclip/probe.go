package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/goquery"
)

// previewLimit caps the markdown preview in runes.
const previewLimit = 600

// Run executes the probe command. It fetches the page, runs rule-free
// extraction, scores the learner's fallback selectors against that output
// and prints suggested queries plus a markdown preview of the content.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	if c.Save && c.Site == "" {
		fmt.Fprintf(deps.Stderr, "error: --save requires --site\n")
		return newsclip.Errorf(newsclip.EINVALID, "--save requires --site")
	}

	markup, err := deps.Fetcher.Fetch(deps.Ctx, c.URL, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	probe, err := deps.Generic.ExtractGeneric(markup)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	doc, err := goquery.Parse(markup)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	titleQuery := suggestTitleQuery(doc, probe.Title)
	contentQuery := suggestContentQuery(doc, contentTextOf(probe.ContentHTML))

	fmt.Fprintf(deps.Stdout, "Title:          %s\n", probe.Title)
	fmt.Fprintf(deps.Stdout, "Title query:    %s\n", orNone(titleQuery))
	fmt.Fprintf(deps.Stdout, "Content query:  %s\n", orNone(contentQuery))

	if probe.ContentHTML != "" && deps.Converter != nil {
		if md, err := deps.Converter.Convert(probe.ContentHTML); err == nil {
			fmt.Fprintf(deps.Stdout, "\n%s\n", truncate(md, previewLimit))
		}
	}

	if !c.Save {
		return nil
	}

	if titleQuery == "" && contentQuery == "" {
		fmt.Fprintf(deps.Stderr, "error: no query suggestions to save\n")
		return newsclip.Errorf(newsclip.EEMPTY, "no query suggestions to save for %s", c.URL)
	}

	rule := &newsclip.ScrapingRule{
		SiteName:     c.Site,
		TitleQuery:   titleQuery,
		ContentQuery: contentQuery,
	}
	if err := deps.Rules.CreateRule(deps.Ctx, rule); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nAdded rule %q at position %d (%s)\n", rule.SiteName, rule.Position, rule.ID)
	return nil
}

// suggestTitleQuery scores the title fallback selectors against the
// rule-free title. A selector whose text matches it exactly wins; failing
// that, the first selector with usable text is suggested.
func suggestTitleQuery(doc *gq.Document, want string) string {
	var usable string
	for _, q := range goquery.TitleFallbacks {
		sel := goquery.Select(doc, q)
		if sel.Length() == 0 {
			continue
		}
		text := newsclip.CleanText(goquery.TextOf(sel.Nodes[0]))
		if want != "" && text == want {
			return q
		}
		if usable == "" && !newsclip.LowConfidence(text) {
			usable = q
		}
	}
	return usable
}

// suggestContentQuery scores the content fallback selectors against the
// rule-free content text. A selector containing the leading snippet of
// that text wins; failing that, the selector with the most text.
func suggestContentQuery(doc *gq.Document, want string) string {
	snippet := want
	if runes := []rune(want); len(runes) > 80 {
		snippet = string(runes[:80])
	}

	var best string
	var bestLen int
	for _, q := range goquery.ContentFallbacks {
		sel := goquery.Select(doc, q)
		if sel.Length() == 0 {
			continue
		}
		text := newsclip.CleanText(goquery.TextOf(sel.Nodes[0]))
		if newsclip.LowConfidence(text) {
			continue
		}
		if snippet != "" && strings.Contains(text, snippet) {
			return q
		}
		if len(text) > bestLen {
			best, bestLen = q, len(text)
		}
	}
	return best
}

// contentTextOf flattens an HTML fragment to cleaned text.
func contentTextOf(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.Parse(fragment)
	if err != nil {
		return ""
	}
	sel := goquery.Select(doc, "body")
	if sel.Length() == 0 {
		return ""
	}
	return newsclip.CleanText(goquery.TextOf(sel.Nodes[0]))
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "…"
}

func orNone(q string) string {
	if q == "" {
		return "(none)"
	}
	return q
}
