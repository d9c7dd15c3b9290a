package news

import (
	"context"

	"golang.org/x/sync/singleflight"

	"sentify/internal/cache"
	"sentify/internal/market"
	"sentify/internal/provider"
)

// Resolver answers news lookups through a TTL cache keyed by
// symbol + "_" + range token. The chain it drives must end with the
// synthetic provider, so resolution always yields a non-empty result.
type Resolver struct {
	chain *provider.Chain[[]market.NewsItem]
	cache *cache.Cache[[]market.NewsItem]
	sf    singleflight.Group
}

func NewResolver(chain *provider.Chain[[]market.NewsItem], c *cache.Cache[[]market.NewsItem]) *Resolver {
	return &Resolver{chain: chain, cache: c}
}

// News resolves articles for a symbol and range token. Whatever the chain
// produced, real or synthetic, is cached under the same key.
func (r *Resolver) News(ctx context.Context, symbol, rangeToken string) []market.NewsItem {
	key := symbol + "_" + rangeToken
	if items, ok := r.cache.Get(key); ok {
		return items
	}
	v, _, _ := r.sf.Do(key, func() (any, error) {
		if items, ok := r.cache.Get(key); ok {
			return items, nil
		}
		items, _ := r.chain.Resolve(ctx, provider.Request{
			Symbol: symbol,
			Days:   market.RangeDays(rangeToken),
		})
		r.cache.Set(key, items)
		return items, nil
	})
	items, _ := v.([]market.NewsItem)
	return items
}
