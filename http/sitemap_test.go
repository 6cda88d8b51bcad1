package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	newshttp "github.com/fwojciec/newsclip/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapDiscoverer_Discover(t *testing.T) {
	t.Parallel()

	t.Run("reads sitemap location from robots.txt", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "User-agent: *\nAllow: /\nSitemap: %s/news-sitemap.xml\n", srv.URL)
		})
		mux.HandleFunc("/news-sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%[1]s/story/1</loc></url>
  <url><loc>%[1]s/story/2</loc></url>
  <url><loc>%[1]s/story/1</loc></url>
</urlset>`, srv.URL)
		})

		d := newshttp.NewSitemapDiscoverer(srv.Client(), nil)
		items, err := d.Discover(context.Background(), "Example News", srv.URL, 0)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Example News", items[0].Source)
		assert.Equal(t, srv.URL+"/story/1", items[0].URL)
		assert.Equal(t, srv.URL+"/story/2", items[1].URL)
	})

	t.Run("falls back to /sitemap.xml and follows index files", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>%s/sitemap-news.xml</loc></sitemap>
</sitemapindex>`, srv.URL)
		})
		mux.HandleFunc("/sitemap-news.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%s/article/a</loc></url>
</urlset>`, srv.URL)
		})

		d := newshttp.NewSitemapDiscoverer(srv.Client(), nil)
		items, err := d.Discover(context.Background(), "Example News", srv.URL, 0)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, srv.URL+"/article/a", items[0].URL)
	})

	t.Run("limit caps discovered items", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?>
<urlset>
  <url><loc>%[1]s/1</loc></url>
  <url><loc>%[1]s/2</loc></url>
  <url><loc>%[1]s/3</loc></url>
</urlset>`, srv.URL)
		})

		d := newshttp.NewSitemapDiscoverer(srv.Client(), nil)
		items, err := d.Discover(context.Background(), "Example News", srv.URL, 2)

		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("skips URLs disallowed by robots.txt", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "User-agent: *\nDisallow: /private/\nSitemap: %s/sitemap.xml\n", srv.URL)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?>
<urlset>
  <url><loc>%[1]s/public/a</loc></url>
  <url><loc>%[1]s/private/b</loc></url>
</urlset>`, srv.URL)
		})

		robots := newshttp.NewRobots(srv.Client(), "newsclip")
		d := newshttp.NewSitemapDiscoverer(srv.Client(), robots)
		items, err := d.Discover(context.Background(), "Example News", srv.URL, 0)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, srv.URL+"/public/a", items[0].URL)
	})
}
