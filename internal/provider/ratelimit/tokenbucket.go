package ratelimit

import (
	"context"
	"sync"
	"time"

	"sentify/internal/provider"
)

// TokenBucket is a stdlib-only token bucket limiter.
// - rate: tokens per second
// - capacity: maximum tokens the bucket can hold (burst)
type TokenBucket struct {
	rate     float64
	capacity float64

	mu     sync.Mutex
	tokens float64
	last   time.Time
}

func NewTokenBucket(tokensPerSecond float64, burst int) *TokenBucket {
	if tokensPerSecond <= 0 {
		tokensPerSecond = 0.0000001
	}
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucket{
		rate:     tokensPerSecond,
		capacity: float64(burst),
		tokens:   float64(burst), // start full to allow an initial burst
		last:     time.Now(),
	}
}

// wait blocks until one token is available or context is canceled.
func (tb *TokenBucket) wait(ctx context.Context) error {
	for {
		tb.mu.Lock()
		now := time.Now()
		elapsed := now.Sub(tb.last).Seconds()
		if elapsed > 0 {
			tb.tokens += elapsed * tb.rate
			if tb.tokens > tb.capacity {
				tb.tokens = tb.capacity
			}
			tb.last = now
		}
		if tb.tokens >= 1 {
			tb.tokens -= 1
			tb.mu.Unlock()
			return nil
		}
		deficit := 1 - tb.tokens
		tb.mu.Unlock()
		waitDur := time.Duration(deficit/tb.rate*1e9) * time.Nanosecond
		if waitDur <= 0 {
			waitDur = time.Millisecond
		}
		timer := time.NewTimer(waitDur)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// TokenBucketProvider wraps a provider and gates attempts using a token
// bucket. Used to stay under credential-scoped request budgets (e.g. the
// Alpha Vantage free-tier RPM cap) instead of burning the quota on bursts.
type TokenBucketProvider[T any] struct {
	P  provider.Provider[T]
	TB *TokenBucket
}

func (t *TokenBucketProvider[T]) Name() string { return t.P.Name() }

func (t *TokenBucketProvider[T]) Attempt(ctx context.Context, req provider.Request) (T, error) {
	if t.TB != nil {
		if err := t.TB.wait(ctx); err != nil {
			var zero T
			return zero, err
		}
	}
	return t.P.Attempt(ctx, req)
}
