// Package page_fetch_driver retrieves raw article pages from third-party
// sites with a browser identification header, a bounded timeout, per-host
// rate limiting and robots.txt compliance.
package page_fetch_driver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"skim/utils/logger"
	"skim/utils/rate_limiter"

	"github.com/temoto/robotstxt"
	"golang.org/x/net/html/charset"
)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	robotsUserAgent  = "skim"

	// maxBodyBytes caps how much of a page is read; article pages beyond
	// this are truncated rather than ballooning memory.
	maxBodyBytes = 8 << 20
)

// ErrRobotsDisallowed marks URLs the site's robots.txt forbids scraping.
var ErrRobotsDisallowed = fmt.Errorf("fetching disallowed by robots.txt")

// HTTPStatusError reports an unexpected HTTP status from an external site.
type HTTPStatusError struct {
	StatusCode int
	URL        string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %q", e.StatusCode, e.URL)
}

type PageFetchDriver struct {
	client      *http.Client
	limiter     *rate_limiter.HostRateLimiter
	checkRobots bool
}

func NewPageFetchDriver(timeout time.Duration, limiter *rate_limiter.HostRateLimiter) *PageFetchDriver {
	return &PageFetchDriver{
		client:      &http.Client{Timeout: timeout},
		limiter:     limiter,
		checkRobots: true,
	}
}

// FetchPage retrieves the page at pageURL and returns its body decoded to
// UTF-8. All failures here are transport-level; extraction failures are a
// separate concern of the caller.
func (d *PageFetchDriver) FetchPage(ctx context.Context, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse page url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("missing host in url %q", pageURL)
	}

	if d.limiter != nil {
		if err := d.limiter.WaitForHost(ctx, pageURL); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	if d.checkRobots && !d.robotsAllowed(ctx, parsed) {
		return "", fmt.Errorf("%w: %s", ErrRobotsDisallowed, pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := d.client.Do(req)
	if err != nil {
		logger.SafeError("failed to fetch page", "url", pageURL, "error", err)
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPStatusError{StatusCode: resp.StatusCode, URL: pageURL}
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode page: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read page: %w", err)
	}

	return string(body), nil
}

// robotsAllowed checks the site's robots.txt. Sites without one, or whose
// robots.txt cannot be retrieved, are treated as allowing the fetch.
func (d *PageFetchDriver) robotsAllowed(ctx context.Context, pageURL *url.URL) bool {
	robotsURL := pageURL.Scheme + "://" + pageURL.Host + "/robots.txt"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return true
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return true
	}
	defer resp.Body.Close()

	robots, err := robotstxt.FromResponse(resp)
	if err != nil {
		return true
	}

	allowed := robots.TestAgent(pageURL.Path, robotsUserAgent)
	if !allowed {
		logger.SafeWarn("robots.txt disallows fetch", "url", pageURL.String())
	}
	return allowed
}
