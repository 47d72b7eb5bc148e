// Package fetch retrieves job postings from the web and reduces the HTML to
// the posting's description text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; MatchAgent/1.0)"

// Posting holds the raw and processed content of a fetched job posting.
type Posting struct {
	URL        string
	Platform   Platform
	HTML       string
	Text       string
	StatusCode int
	FromCache  bool
}

// Error represents a failure while fetching a posting.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	CacheTTL  time.Duration
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		CacheTTL:  DefaultCacheTTL,
	}
}

// Fetcher retrieves job postings, caching successful fetches in memory.
type Fetcher struct {
	client *http.Client
	opts   *Options
	cache  *postingCache
}

// NewFetcher creates a Fetcher. A nil opts uses DefaultOptions.
func NewFetcher(opts *Options) *Fetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return &Fetcher{
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
		cache:  newPostingCache(opts.CacheTTL),
	}
}

// JobPosting fetches a job posting URL and extracts its description text.
// A fresh cached copy is returned without a network round trip.
func (f *Fetcher) JobPosting(ctx context.Context, urlStr string) (*Posting, error) {
	if cached, ok := f.cache.get(urlStr); ok {
		return cached, nil
	}

	posting, err := f.fetch(ctx, urlStr)
	if err != nil {
		return posting, err
	}

	platform := DetectPlatform(urlStr)
	text, err := ExtractPostingText(posting.HTML, platform)
	if err != nil {
		return posting, &Error{URL: urlStr, Message: "failed to extract posting text", Cause: err}
	}
	posting.Platform = platform
	posting.Text = text

	f.cache.put(urlStr, posting)
	return posting, nil
}

// InvalidateCache removes a URL from the cache, forcing a fresh fetch.
func (f *Fetcher) InvalidateCache(urlStr string) {
	f.cache.invalidate(urlStr)
}

func (f *Fetcher) fetch(ctx context.Context, urlStr string) (*Posting, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	for key, value := range f.opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	posting := &Posting{
		URL:        urlStr,
		HTML:       string(body),
		StatusCode: resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return posting, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return posting, nil
}

// ExtractPostingText parses posting HTML and returns the description text.
// Platform-specific noise (application forms, EEO boilerplate, share buttons)
// is removed first, then the best-matching content selector wins. Falls back
// to the body element when nothing matches.
func ExtractPostingText(html string, platform Platform) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()
	if noise := platformNoiseSelectors(platform); len(noise) > 0 {
		doc.Find(strings.Join(noise, ", ")).Remove()
	}

	var content *goquery.Selection
	for _, selector := range platformContentSelectors(platform) {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace drops blank lines and trims the rest.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
