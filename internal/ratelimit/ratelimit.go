package ratelimit

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/treyhall/jobscout/internal/model"
)

// HostRateLimiter enforces a minimum delay between requests to the same
// host. Batch and watch runs share one instance so concurrent pipelines
// stay polite to a job board serving several of the URLs.
type HostRateLimiter struct {
	mu       sync.Mutex
	lastCall map[string]time.Time // key: host
	minDelay time.Duration
}

// NewHostRateLimiter creates a rate limiter that enforces minDelay
// between consecutive requests to the same host.
func NewHostRateLimiter(minDelay time.Duration) *HostRateLimiter {
	return &HostRateLimiter{
		lastCall: make(map[string]time.Time),
		minDelay: minDelay,
	}
}

// Wait blocks until enough time has passed since the last request to
// the given host. Returns an error if the context is cancelled while
// waiting.
func (r *HostRateLimiter) Wait(ctx context.Context, host string) error {
	r.mu.Lock()
	last, ok := r.lastCall[host]
	now := time.Now()

	if !ok {
		// First request for this host — no wait needed.
		r.lastCall[host] = now
		r.mu.Unlock()
		return nil
	}

	elapsed := now.Sub(last)
	if elapsed >= r.minDelay {
		r.lastCall[host] = now
		r.mu.Unlock()
		return nil
	}

	remaining := r.minDelay - elapsed
	r.mu.Unlock()

	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limiter wait for %s: %w", host, ctx.Err())
	case <-time.After(remaining):
	}

	r.mu.Lock()
	r.lastCall[host] = time.Now()
	r.mu.Unlock()
	return nil
}

// Ensure RateLimitedFetcher implements model.DocumentFetcher.
var _ model.DocumentFetcher = (*RateLimitedFetcher)(nil)

// RateLimitedFetcher is a decorator that waits for the shared limiter
// before delegating to the wrapped DocumentFetcher.
type RateLimitedFetcher struct {
	inner   model.DocumentFetcher
	limiter *HostRateLimiter
}

// NewRateLimitedFetcher wraps a DocumentFetcher with host-level rate limiting.
func NewRateLimitedFetcher(inner model.DocumentFetcher, limiter *HostRateLimiter) *RateLimitedFetcher {
	return &RateLimitedFetcher{inner: inner, limiter: limiter}
}

// Fetch waits out the per-host delay, then delegates.
func (f *RateLimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}
	if err := f.limiter.Wait(ctx, host); err != nil {
		return "", err
	}
	return f.inner.Fetch(ctx, rawURL)
}
