package seo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Fetcher defines how raw HTML is retrieved for analysis.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// FetchResult is the raw outcome of a page download.
type FetchResult struct {
	Body       []byte
	StatusCode int
	// Elapsed is the wall time of the whole round trip including the
	// body read; it becomes the record's load_time_ms.
	Elapsed time.Duration
}

const (
	maxRedirects = 5
	userAgent    = "seo-url-analyzer/1.0"

	// Response bodies are capped at 10 MB to prevent memory exhaustion
	// from extremely large or infinite responses.
	maxResponseBody = 10 << 20
)

var (
	errTooManyRedirects = errors.New("too many redirects")
	errBlockedRedirect  = errors.New("redirect to non-http(s) scheme blocked")
)

// HTTPClient implements Fetcher using a real HTTP client.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient returns a Fetcher with the given request timeout and
// redirect validation that prevents SSRF via redirect chains. Unless
// allowPrivateHosts is set, connections to private/reserved IP ranges are
// blocked at dial time.
func NewHTTPClient(timeout time.Duration, allowPrivateHosts bool) *HTTPClient {
	dialer := safeDialer()
	if allowPrivateHosts {
		dialer = &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}
	}

	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext:         dialer.DialContext,
				MaxConnsPerHost:     10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			CheckRedirect: safeRedirectPolicy,
		},
	}
}

// safeRedirectPolicy validates redirect targets and limits the redirect chain length.
func safeRedirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("%w: stopped after %d", errTooManyRedirects, maxRedirects)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return fmt.Errorf("%w: %s", errBlockedRedirect, req.URL.Scheme)
	}
	return nil
}

// Fetch downloads the page at the given URL and measures how long the
// round trip took.
func (c *HTTPClient) Fetch(ctx context.Context, targetURL string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, err
	}

	return &FetchResult{
		Body:       body,
		StatusCode: resp.StatusCode,
		Elapsed:    time.Since(start),
	}, nil
}
