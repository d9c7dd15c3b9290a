package quote

import (
	"context"
	"errors"
	"sort"
	"strings"

	"golang.org/x/sync/singleflight"

	"sentify/internal/cache"
	"sentify/internal/market"
	"sentify/internal/provider"
)

// maxSearchSymbols bounds both the match set and downstream provider calls.
const maxSearchSymbols = 5

var errNoQuote = errors.New("no quote available")

// Resolver answers quote lookups through a TTL cache in front of the provider
// chain, and symbol search against the static alias table.
type Resolver struct {
	chain    *provider.Chain[market.Quote]
	cache    *cache.Cache[market.Quote]
	aliases  map[string]string
	defaults []string

	// sf coalesces concurrent misses for the same symbol so duplicate
	// requests cost one upstream chain walk.
	sf singleflight.Group
}

func NewResolver(chain *provider.Chain[market.Quote], c *cache.Cache[market.Quote]) *Resolver {
	return &Resolver{
		chain:    chain,
		cache:    c,
		aliases:  market.TickerAliases,
		defaults: market.DefaultSymbols,
	}
}

// WithTables overrides the static search tables, for tests.
func (r *Resolver) WithTables(aliases map[string]string, defaults []string) *Resolver {
	r.aliases = aliases
	r.defaults = defaults
	return r
}

// Quote resolves a single symbol. ok=false means the chain was exhausted:
// no provider knew the symbol. That is absence, not an error.
func (r *Resolver) Quote(ctx context.Context, symbol string) (market.Quote, bool) {
	if q, ok := r.cache.Get(symbol); ok {
		return q, true
	}
	v, err, _ := r.sf.Do(symbol, func() (any, error) {
		if q, ok := r.cache.Get(symbol); ok {
			return q, nil
		}
		q, ok := r.chain.Resolve(ctx, provider.Request{Symbol: symbol})
		if !ok {
			return nil, errNoQuote
		}
		r.cache.Set(symbol, q)
		return q, nil
	})
	if err != nil {
		return market.Quote{}, false
	}
	return v.(market.Quote), true
}

// Search matches a free-text query against the alias table and resolves the
// matched symbols to quotes. An empty query resolves the default symbol set;
// symbols that fail to resolve are skipped, never failing the whole search.
func (r *Resolver) Search(ctx context.Context, query string) []market.Quote {
	out := make([]market.Quote, 0, maxSearchSymbols)

	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		for _, sym := range r.defaults {
			if quote, ok := r.Quote(ctx, sym); ok {
				out = append(out, quote)
			}
		}
		return out
	}

	matched := make(map[string]struct{}, maxSearchSymbols)
	order := make([]string, 0, maxSearchSymbols)
	add := func(sym string) {
		if _, dup := matched[sym]; !dup {
			matched[sym] = struct{}{}
			order = append(order, sym)
		}
	}

	// Exact match first.
	if sym, ok := r.aliases[q]; ok {
		add(sym)
	}

	// Then substring/prefix, walking names in sorted order so the cap cuts
	// deterministically.
	names := make([]string, 0, len(r.aliases))
	for name := range r.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if len(matched) >= maxSearchSymbols {
			break
		}
		if strings.Contains(name, q) || strings.HasPrefix(name, q) {
			add(r.aliases[name])
		}
	}

	for _, sym := range order {
		if quote, ok := r.Quote(ctx, sym); ok && quote.Price > 0 {
			out = append(out, quote)
		}
	}
	return out
}
