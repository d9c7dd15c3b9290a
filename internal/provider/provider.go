package provider

import (
	"context"
	"errors"
	"log"
)

// Outcome classification. Adapters return one of these sentinels (or wrap
// one); any other error is treated as transient (network, timeout, bad
// schema). The chain absorbs all of them and advances.
var (
	// ErrNotConfigured means the provider's credential is absent. Skipped
	// silently; this is normal operation, not a failure.
	ErrNotConfigured = errors.New("provider not configured")

	// ErrRateLimited means the provider explicitly signaled throttling.
	ErrRateLimited = errors.New("provider rate limited")

	// ErrNoData means the response was structurally valid but empty.
	ErrNoData = errors.New("provider returned no data")
)

// Request identifies what a provider should fetch. Days is the news time
// window; quote providers ignore it.
type Request struct {
	Symbol string
	Days   int
}

// Provider attempts to produce a normalized result for a request.
type Provider[T any] interface {
	Name() string
	Attempt(ctx context.Context, req Request) (T, error)
}

// Chain is an ordered list of providers tried strictly in sequence until one
// succeeds. The chain itself never fails: exhaustion is reported as ok=false,
// and the caller decides whether that means absence (quotes) or should have
// been caught by a terminal fallback (news).
type Chain[T any] struct {
	Providers []Provider[T]
}

func NewChain[T any](providers ...Provider[T]) *Chain[T] {
	return &Chain[T]{Providers: providers}
}

// Resolve walks the chain. Each failure is absorbed locally: missing
// configuration advances without logging, everything else logs and advances.
func (c *Chain[T]) Resolve(ctx context.Context, req Request) (T, bool) {
	var zero T
	for _, p := range c.Providers {
		v, err := p.Attempt(ctx, req)
		if err == nil {
			return v, true
		}
		switch {
		case errors.Is(err, ErrNotConfigured):
			// credential absent, skip quietly
		case errors.Is(err, ErrRateLimited):
			log.Printf("%s rate limited for %s, advancing", p.Name(), req.Symbol)
		default:
			log.Printf("%s error for %s: %v", p.Name(), req.Symbol, err)
		}
	}
	return zero, false
}
