package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"sentify/internal/httpx"
	"sentify/internal/market"
	"sentify/internal/provider"
)

// AlphaVantageConfig controls the Alpha Vantage GLOBAL_QUOTE adapter.
type AlphaVantageConfig struct {
	Name   string
	URL    string
	APIKey string
	// Names resolves display names for returned quotes. Defaults to the
	// static company table.
	Names map[string]string
}

// AlphaVantage is the primary real-time quote provider.
type AlphaVantage struct {
	cfg    AlphaVantageConfig
	client *httpx.Client
}

func NewAlphaVantage(cfg AlphaVantageConfig, hc *httpx.Client) *AlphaVantage {
	if cfg.Name == "" {
		cfg.Name = "AlphaVantage"
	}
	if cfg.URL == "" {
		cfg.URL = "https://www.alphavantage.co/query"
	}
	if cfg.Names == nil {
		cfg.Names = market.CompanyNames
	}
	return &AlphaVantage{cfg: cfg, client: hc}
}

func (p *AlphaVantage) Name() string { return p.cfg.Name }

type globalQuoteResponse struct {
	GlobalQuote struct {
		Price         string `json:"05. price"`
		PreviousClose string `json:"08. previous close"`
	} `json:"Global Quote"`
}

func (p *AlphaVantage) Attempt(ctx context.Context, req provider.Request) (market.Quote, error) {
	if p.cfg.APIKey == "" {
		return market.Quote{}, provider.ErrNotConfigured
	}

	u := fmt.Sprintf("%s?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		p.cfg.URL, url.QueryEscape(req.Symbol), url.QueryEscape(p.cfg.APIKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return market.Quote{}, err
	}
	resp, err := p.client.Do(ctx, httpReq)
	if err != nil {
		return market.Quote{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusTooManyRequests {
		return market.Quote{}, provider.ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return market.Quote{}, fmt.Errorf("GET %s -> %d", p.cfg.URL, resp.StatusCode)
	}

	var body globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return market.Quote{}, fmt.Errorf("decode: %w", err)
	}
	if body.GlobalQuote.Price == "" {
		// Alpha Vantage returns an empty Global Quote object for unknown
		// symbols and for exhausted keys alike.
		return market.Quote{}, provider.ErrNoData
	}

	price, err := strconv.ParseFloat(body.GlobalQuote.Price, 64)
	if err != nil {
		return market.Quote{}, fmt.Errorf("parse price %q: %w", body.GlobalQuote.Price, err)
	}
	previous := price
	if body.GlobalQuote.PreviousClose != "" {
		if v, err := strconv.ParseFloat(body.GlobalQuote.PreviousClose, 64); err == nil {
			previous = v
		}
	}

	name := req.Symbol
	if n, ok := p.cfg.Names[req.Symbol]; ok {
		name = n
	}
	return market.Quote{
		Symbol: req.Symbol,
		Name:   name,
		Price:  round2(price),
		Change: round2(price - previous),
	}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
