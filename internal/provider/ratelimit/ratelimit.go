package ratelimit

import (
	"context"
	"time"

	"sentify/internal/provider"
)

// Delay wraps a provider and pauses before every attempt. Used as an
// anti-throttling courtesy for upstreams without an explicit rate contract.
// The pause respects context cancellation.
type Delay[T any] struct {
	P     provider.Provider[T]
	Pause time.Duration
}

func (d *Delay[T]) Name() string { return d.P.Name() }

func (d *Delay[T]) Attempt(ctx context.Context, req provider.Request) (T, error) {
	if d.Pause > 0 {
		t := time.NewTimer(d.Pause)
		defer t.Stop()
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-t.C:
		}
	}
	return d.P.Attempt(ctx, req)
}
