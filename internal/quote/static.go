package quote

import (
	"context"

	"sentify/internal/market"
	"sentify/internal/provider"
)

// Static is the terminal quote provider: a fixed table of well-known symbols
// served verbatim when every dynamic provider has failed. A symbol outside
// the table exhausts the chain, which callers treat as absence, not failure.
type Static struct {
	name  string
	table map[string]market.Quote
}

func NewStatic(table map[string]market.Quote) *Static {
	return &Static{name: "StaticTable", table: table}
}

func (p *Static) Name() string { return p.name }

func (p *Static) Attempt(_ context.Context, req provider.Request) (market.Quote, error) {
	if q, ok := p.table[req.Symbol]; ok {
		return q, nil
	}
	return market.Quote{}, provider.ErrNoData
}
