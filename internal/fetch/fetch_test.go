package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobPosting_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><main><h1>Backend Engineer</h1><p>5 years of Go required.</p></main></body></html>`))
	}))
	defer server.Close()

	f := NewFetcher(nil)
	posting, err := f.JobPosting(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL, posting.URL)
	assert.Equal(t, http.StatusOK, posting.StatusCode)
	assert.Contains(t, posting.Text, "Backend Engineer")
	assert.Contains(t, posting.Text, "5 years of Go required.")
	assert.False(t, posting.FromCache)
}

func TestJobPosting_InvalidURL(t *testing.T) {
	f := NewFetcher(nil)
	_, err := f.JobPosting(context.Background(), "not-a-valid-url")
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestJobPosting_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFetcher(nil)
	posting, err := f.JobPosting(context.Background(), server.URL)
	require.Error(t, err)
	assert.NotNil(t, posting)
	assert.Equal(t, http.StatusNotFound, posting.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestJobPosting_CachesSecondFetch(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(`<html><body><main>Posting body</main></body></html>`))
	}))
	defer server.Close()

	f := NewFetcher(nil)
	first, err := f.JobPosting(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := f.JobPosting(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, 1, hits)
}

func TestJobPosting_InvalidateForcesRefetch(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(`<html><body><main>Posting body</main></body></html>`))
	}))
	defer server.Close()

	f := NewFetcher(nil)
	_, err := f.JobPosting(context.Background(), server.URL)
	require.NoError(t, err)

	f.InvalidateCache(server.URL)
	posting, err := f.JobPosting(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, posting.FromCache)
	assert.Equal(t, 2, hits)
}

func TestPostingCache_ExpiresAfterTTL(t *testing.T) {
	cache := newPostingCache(time.Hour)
	current := time.Now()
	cache.now = func() time.Time { return current }

	cache.put("https://example.com/job", &Posting{Text: "body"})
	_, ok := cache.get("https://example.com/job")
	assert.True(t, ok)

	current = current.Add(2 * time.Hour)
	_, ok = cache.get("https://example.com/job")
	assert.False(t, ok)
}

func TestPostingCache_DisabledWithZeroTTL(t *testing.T) {
	cache := newPostingCache(0)
	cache.put("https://example.com/job", &Posting{Text: "body"})
	_, ok := cache.get("https://example.com/job")
	assert.False(t, ok)
}

func TestExtractPostingText_NoiseRemoved(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<div class="job-description">
				<h2>Requirements</h2>
				<p>5 years experience in Go</p>
			</div>
			<form>Apply here</form>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractPostingText(html, PlatformUnknown)
	require.NoError(t, err)
	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "5 years experience")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Apply here")
	assert.NotContains(t, text, "Footer")
}

func TestExtractPostingText_GreenhouseSelectors(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="sidebar">Sidebar junk</div>
			<div class="job__description body">
				<p>Design and ship backend services.</p>
			</div>
		</body>
	</html>`

	text, err := ExtractPostingText(html, PlatformGreenhouse)
	require.NoError(t, err)
	assert.Contains(t, text, "Design and ship backend services.")
	assert.NotContains(t, text, "Sidebar junk")
}

func TestExtractPostingText_FallbackToBody(t *testing.T) {
	html := `<html><body><div>Some content here.</div></body></html>`

	text, err := ExtractPostingText(html, PlatformUnknown)
	require.NoError(t, err)
	assert.Contains(t, text, "Some content here")
}

func TestDetectPlatform(t *testing.T) {
	assert.Equal(t, PlatformGreenhouse, DetectPlatform("https://boards.greenhouse.io/acme/jobs/123"))
	assert.Equal(t, PlatformLever, DetectPlatform("https://jobs.lever.co/acme/abc-def"))
	assert.Equal(t, PlatformWorkday, DetectPlatform("https://acme.wd1.myworkdayjobs.com/en-US/careers/job/123"))
	assert.Equal(t, PlatformUnknown, DetectPlatform("https://careers.example.com/jobs/123"))
	assert.Equal(t, PlatformUnknown, DetectPlatform("::bad url::"))
}
