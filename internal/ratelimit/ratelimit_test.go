package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestWait_SameHost_EnforcesMinDelay(t *testing.T) {
	limiter := NewHostRateLimiter(100 * time.Millisecond)
	ctx := context.Background()

	// First call should return immediately.
	if err := limiter.Wait(ctx, "boards.example.com"); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	start := time.Now()
	if err := limiter.Wait(ctx, "boards.example.com"); err != nil {
		t.Fatalf("second wait: %v", err)
	}
	elapsed := time.Since(start)

	// Should have waited at least ~100ms (allow 80ms for timer jitter).
	if elapsed < 80*time.Millisecond {
		t.Errorf("expected >= 80ms wait, got %v", elapsed)
	}
}

func TestWait_DifferentHosts_NoCrossBlocking(t *testing.T) {
	limiter := NewHostRateLimiter(200 * time.Millisecond)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "boards.example.com"); err != nil {
		t.Fatalf("first host wait: %v", err)
	}

	// Immediately call for another host — should NOT block.
	start := time.Now()
	if err := limiter.Wait(ctx, "careers.other.com"); err != nil {
		t.Fatalf("second host wait: %v", err)
	}
	elapsed := time.Since(start)

	if elapsed > 50*time.Millisecond {
		t.Errorf("expected second host wait to be near-instant, got %v", elapsed)
	}
}

func TestWait_ContextCancellation(t *testing.T) {
	limiter := NewHostRateLimiter(5 * time.Second) // long delay
	ctx := context.Background()

	// First call to seed the last-call time.
	if err := limiter.Wait(ctx, "boards.example.com"); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	// Cancel the context before the wait completes.
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	if err := limiter.Wait(ctx, "boards.example.com"); err == nil {
		t.Fatal("expected error from cancelled context, got nil")
	}
}

// recordingFetcher notes the URLs it was asked to fetch.
type recordingFetcher struct {
	urls []string
}

func (f *recordingFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.urls = append(f.urls, url)
	return "", nil
}

func TestRateLimitedFetcher_WaitsBeforeDelegating(t *testing.T) {
	limiter := NewHostRateLimiter(100 * time.Millisecond)
	inner := &recordingFetcher{}
	fetcher := NewRateLimitedFetcher(inner, limiter)
	ctx := context.Background()

	// First call — seeds limiter, then delegates.
	if _, err := fetcher.Fetch(ctx, "https://boards.example.com/jobs/1"); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if len(inner.urls) != 1 {
		t.Fatal("inner fetcher was not called on first fetch")
	}

	// Second call to the same host — should wait for the rate limiter.
	start := time.Now()
	if _, err := fetcher.Fetch(ctx, "https://boards.example.com/jobs/2"); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	elapsed := time.Since(start)

	if len(inner.urls) != 2 {
		t.Fatal("inner fetcher was not called on second fetch")
	}
	if elapsed < 80*time.Millisecond {
		t.Errorf("expected >= 80ms wait on second fetch, got %v", elapsed)
	}
}

func TestRateLimitedFetcher_KeysByHost(t *testing.T) {
	limiter := NewHostRateLimiter(200 * time.Millisecond)
	inner := &recordingFetcher{}
	fetcher := NewRateLimitedFetcher(inner, limiter)
	ctx := context.Background()

	if _, err := fetcher.Fetch(ctx, "https://boards.example.com/jobs/1"); err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	// Different host — no wait.
	start := time.Now()
	if _, err := fetcher.Fetch(ctx, "https://careers.other.com/jobs/1"); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("expected cross-host fetch to be near-instant, got %v", elapsed)
	}
}
