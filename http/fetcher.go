// Package http provides the HTTP-based implementation of newsclip.Fetcher
// plus sitemap-based discovery of candidate news URLs.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/newsclip"
)

// DefaultFetchTimeout is the default connection/read timeout for requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultHeaders is the request header set used when a rule carries none.
// The user agent is a realistic browser string; sites commonly reject the
// Go default agent outright.
var DefaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

// Ensure Fetcher implements newsclip.Fetcher at compile time.
var _ newsclip.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw page markup over HTTP. It does not execute
// JavaScript and never retries; every failure mode (timeout, DNS, TLS,
// non-2xx status) surfaces as an EUNAVAILABLE error.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	headers map[string]string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithDefaultHeaders replaces the default header set.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(f *Fetcher) {
		f.headers = headers
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		headers: DefaultHeaders,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the markup at url. When headers is non-empty it replaces
// the fetcher's default header set entirely.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", newsclip.Errorf(newsclip.EINVALID, "invalid URL %q: %v", url, err)
	}

	if len(headers) == 0 {
		headers = f.headers
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", newsclip.Errorf(newsclip.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newsclip.Errorf(newsclip.EUNAVAILABLE, "fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newsclip.Errorf(newsclip.EUNAVAILABLE, "fetch %s: read body: %v", url, err)
	}

	return string(body), nil
}
