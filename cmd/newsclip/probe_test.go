package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/newsclip"
	main "github.com/fwojciec/newsclip/cmd/newsclip"
	"github.com/fwojciec/newsclip/htmltomarkdown"
	"github.com/fwojciec/newsclip/mock"
	"github.com/fwojciec/newsclip/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const probePage = `<!DOCTYPE html>
<html>
<head>
<title>Council Approves Budget - Example News</title>
<meta property="og:title" content="Council Approves Budget">
</head>
<body>
<nav><a href="/">Home</a><a href="/politics">Politics</a></nav>
<h1 class="post-title">Council Approves Budget</h1>
<article>
<p>The city council voted on Tuesday to approve next year's budget after a lengthy debate over school funding.</p>
<p>The measure passed by a narrow margin and takes effect in January.</p>
</article>
<footer>Copyright 2026 Example News</footer>
</body>
</html>`

func probeDeps(stdout, stderr *bytes.Buffer, rules newsclip.RuleService) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Rules:  rules,
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string, _ map[string]string) (string, error) {
				return probePage, nil
			},
		},
		Generic:   trafilatura.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
	}
}

func TestProbeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("suggests queries and prints a preview", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := probeDeps(stdout, &bytes.Buffer{}, nil)

		cmd := &main.ProbeCmd{URL: "https://example.com/story"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Title query:    h1[class*=title]")
		assert.Contains(t, output, "Content query:  article")
		assert.Contains(t, output, "voted on Tuesday")
	})

	t.Run("save creates a rule from the suggestions", func(t *testing.T) {
		t.Parallel()

		var created *newsclip.ScrapingRule
		rules := &mock.RuleService{
			CreateRuleFn: func(_ context.Context, rule *newsclip.ScrapingRule) error {
				rule.ID = "rule-1"
				rule.Position = 1
				created = rule
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := probeDeps(stdout, &bytes.Buffer{}, rules)

		cmd := &main.ProbeCmd{URL: "https://example.com/story", Site: "Example News", Save: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "Example News", created.SiteName)
		assert.Equal(t, "h1[class*=title]", created.TitleQuery)
		assert.Equal(t, "article", created.ContentQuery)
		assert.Contains(t, stdout.String(), "Added rule")
	})

	t.Run("save without site fails", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := probeDeps(&bytes.Buffer{}, stderr, nil)

		cmd := &main.ProbeCmd{URL: "https://example.com/story", Save: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, newsclip.EINVALID, newsclip.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--site")
	})

	t.Run("fetch failure fails the command", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := probeDeps(&bytes.Buffer{}, stderr, nil)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string, _ map[string]string) (string, error) {
				return "", newsclip.Errorf(newsclip.EUNAVAILABLE, "request failed")
			},
		}

		cmd := &main.ProbeCmd{URL: "https://example.com/story"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, newsclip.EUNAVAILABLE, newsclip.ErrorCode(err))
	})
}
