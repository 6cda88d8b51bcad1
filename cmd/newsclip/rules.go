package main

import (
	"fmt"

	"github.com/fwojciec/newsclip"
)

// Run executes the "rules list" command.
func (c *RulesListCmd) Run(deps *Dependencies) error {
	rules, err := deps.Rules.FindRules(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	if len(rules) == 0 {
		fmt.Fprintln(deps.Stdout, "No rules found. Use 'newsclip rules add' or 'newsclip probe --save' to create one.")
		return nil
	}

	for _, rule := range rules {
		fmt.Fprintf(deps.Stdout, "%3d  %s  %s  title=%q content=%q\n",
			rule.Position, rule.ID, rule.SiteName, rule.TitleQuery, rule.ContentQuery)
	}

	return nil
}

// Run executes the "rules add" command.
func (c *RulesAddCmd) Run(deps *Dependencies) error {
	rule := &newsclip.ScrapingRule{
		SiteName:     c.SiteName,
		SiteURL:      c.SiteURL,
		TitleQuery:   c.TitleQuery,
		ContentQuery: c.ContentQuery,
		Headers:      c.Header,
	}

	if err := deps.Rules.CreateRule(deps.Ctx, rule); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added rule %q at position %d (%s)\n", rule.SiteName, rule.Position, rule.ID)
	return nil
}

// Run executes the "rules delete" command.
func (c *RulesDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return newsclip.Errorf(newsclip.EINVALID, "use --force to confirm deletion")
	}

	rule, err := deps.Rules.FindRuleByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	if err := deps.Rules.DeleteRule(deps.Ctx, rule.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted rule %q\n", rule.SiteName)
	return nil
}
