package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/newsclip"
)

// Ensure SitemapDiscoverer implements newsclip.Discoverer.
var _ newsclip.Discoverer = (*SitemapDiscoverer)(nil)

// SitemapDiscoverer finds candidate article URLs from a site's sitemap.
// It reads Sitemap: directives from robots.txt, falling back to
// /sitemap.xml, and handles both <urlset> and <sitemapindex> documents.
// URLs disallowed by robots.txt are skipped.
type SitemapDiscoverer struct {
	client *http.Client
	robots *Robots
}

// NewSitemapDiscoverer creates a SitemapDiscoverer. If client is nil,
// http.DefaultClient is used.
func NewSitemapDiscoverer(client *http.Client, robots *Robots) *SitemapDiscoverer {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapDiscoverer{client: client, robots: robots}
}

// Discover returns up to limit news items found in the site's sitemaps.
// A limit of zero or less means no cap. Items carry the given source name
// and a URL only; titles come later from extraction.
func (d *SitemapDiscoverer) Discover(ctx context.Context, source, siteURL string, limit int) ([]*newsclip.NewsItem, error) {
	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "invalid site URL %q: %v", siteURL, err)
	}

	sitemapURLs, err := d.findSitemapURLs(ctx, base)
	if err != nil {
		return nil, err
	}

	var items []*newsclip.NewsItem
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)

	for _, sitemapURL := range sitemapURLs {
		urls, err := d.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			if seenURLs[u] {
				continue
			}
			seenURLs[u] = true
			if d.robots != nil && !d.robots.Allowed(ctx, u) {
				continue
			}
			items = append(items, &newsclip.NewsItem{Source: source, URL: u})
			if limit > 0 && len(items) >= limit {
				return items, nil
			}
		}
	}

	return items, nil
}

// findSitemapURLs discovers sitemap locations from robots.txt or falls
// back to /sitemap.xml at the site root.
func (d *SitemapDiscoverer) findSitemapURLs(ctx context.Context, base *url.URL) ([]string, error) {
	root := *base
	root.Path = ""

	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"})
	if sitemaps, err := d.sitemapsFromRobots(ctx, robotsURL.String()); err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	return []string{fallback.String()}, nil
}

// sitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (d *SitemapDiscoverer) sitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := d.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			if u := strings.TrimSpace(line[len("sitemap:"):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}

	return sitemaps, nil
}

// processSitemap fetches and parses one sitemap, recursing into index
// files. Sitemaps already seen are skipped.
func (d *SitemapDiscoverer) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := d.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		var all []string
		for _, sm := range root.SelectElements("sitemap") {
			loc := sm.SelectElement("loc")
			if loc == nil {
				continue
			}
			nested := strings.TrimSpace(loc.Text())
			if nested == "" {
				continue
			}
			urls, err := d.processSitemap(ctx, nested, seen)
			if err != nil {
				return nil, err
			}
			all = append(all, urls...)
		}
		return all, nil
	}

	var urls []string
	for _, u := range root.SelectElements("url") {
		loc := u.SelectElement("loc")
		if loc == nil {
			continue
		}
		if text := strings.TrimSpace(loc.Text()); text != "" {
			urls = append(urls, text)
		}
	}
	return urls, nil
}

func (d *SitemapDiscoverer) fetchURL(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EUNAVAILABLE, "fetch %s: %v", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, newsclip.Errorf(newsclip.EUNAVAILABLE, "fetch %s: HTTP %d", rawURL, resp.StatusCode)
	}

	return resp.Body, nil
}
