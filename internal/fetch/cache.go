package fetch

import (
	"sync"
	"time"
)

// DefaultCacheTTL controls how long a fetched posting stays fresh.
const DefaultCacheTTL = 24 * time.Hour

type cacheEntry struct {
	posting   *Posting
	fetchedAt time.Time
}

// postingCache is an in-memory TTL cache of fetched postings keyed by URL.
// A non-positive TTL disables caching.
type postingCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newPostingCache(ttl time.Duration) *postingCache {
	return &postingCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *postingCache) get(urlStr string) (*Posting, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[urlStr]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) > c.ttl {
		delete(c.entries, urlStr)
		return nil, false
	}

	cached := *entry.posting
	cached.FromCache = true
	return &cached, true
}

func (c *postingCache) put(urlStr string, posting *Posting) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[urlStr] = cacheEntry{posting: posting, fetchedAt: c.now()}
}

func (c *postingCache) invalidate(urlStr string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, urlStr)
}
