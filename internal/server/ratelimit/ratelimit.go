// Package ratelimit throttles API clients with per-endpoint token buckets.
// The tiers reflect what each route costs: LLM-backed extraction is scarce,
// auth endpoints are brute-force targets, in-process scoring is cheap.
package ratelimit

import (
	"sync"
	"time"
)

// bucketIdleEviction is how long a client/endpoint bucket may go unused
// before the sweeper drops it.
const bucketIdleEviction = time.Hour

// bucket is a token bucket for one client/endpoint/method triple. It tracks
// its own last use so the sweeper needs no side table.
type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	perSecond  float64
	refilledAt time.Time
	seenAt     time.Time
}

func newBucket(capacity int, perSecond float64) *bucket {
	now := time.Now()
	return &bucket{
		tokens:     float64(capacity),
		capacity:   float64(capacity),
		perSecond:  perSecond,
		refilledAt: now,
		seenAt:     now,
	}
}

// take refills, then consumes one token if available. remaining and reset
// describe the bucket after the attempt, from the same locked read the
// decision was made on.
func (b *bucket) take() (ok bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.refilledAt).Seconds() * b.perSecond
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.refilledAt = now
	b.seenAt = now

	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}

	remaining = int(b.tokens)
	if b.tokens < b.capacity {
		deficit := b.capacity - b.tokens
		reset = now.Add(time.Duration(deficit / b.perSecond * float64(time.Second)))
	} else {
		reset = now
	}
	return ok, remaining, reset
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.seenAt.Before(cutoff)
}

// Info reports the rate limit state a decision was made under, for the
// X-RateLimit response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter applies per-client, per-endpoint rate limits.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config

	sweepTicker *time.Ticker
	sweepDone   chan struct{}
}

// NewLimiter creates a limiter. A nil config gets permissive defaults.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.sweepTicker = time.NewTicker(config.CleanupInterval)
		l.sweepDone = make(chan struct{})
		go l.sweep()
	}

	return l
}

// Allow decides whether clientID may hit the given path and method now.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	limit := l.config.limitFor(path, method)
	if limit.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	b := l.bucketFor(clientID+":"+path+":"+method, limit)
	allowed, remaining, reset := b.take()

	var retryAfter time.Duration
	if !allowed {
		if retryAfter = time.Until(reset); retryAfter < 0 {
			retryAfter = 0
		}
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      limit.Limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) bucketFor(key string, limit EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := limit.Burst
	if capacity <= 0 {
		capacity = limit.Limit
	}
	b := newBucket(capacity, float64(limit.Limit)/limit.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) sweep() {
	for {
		select {
		case <-l.sweepTicker.C:
			l.evictIdle(bucketIdleEviction)
		case <-l.sweepDone:
			return
		}
	}
}

// evictIdle drops buckets that have not been used since maxIdle ago.
func (l *Limiter) evictIdle(maxIdle time.Duration) {
	cutoff := time.Now().Add(-maxIdle)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the eviction sweeper.
func (l *Limiter) Stop() {
	if l.sweepTicker != nil {
		l.sweepTicker.Stop()
	}
	if l.sweepDone != nil {
		close(l.sweepDone)
	}
}
