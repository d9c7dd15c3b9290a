package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"sentify/internal/httpx"
	"sentify/internal/market"
	"sentify/internal/provider"
)

// YahooConfig controls the Yahoo Finance chart adapter.
type YahooConfig struct {
	Name  string
	URL   string
	Names map[string]string
}

// Yahoo is the secondary quote provider. It is keyless and therefore always
// configured; callers wrap it with a courtesy delay so successive fallbacks
// do not hammer the endpoint.
type Yahoo struct {
	cfg    YahooConfig
	client *httpx.Client
}

func NewYahoo(cfg YahooConfig, hc *httpx.Client) *Yahoo {
	if cfg.Name == "" {
		cfg.Name = "Yahoo"
	}
	if cfg.URL == "" {
		cfg.URL = "https://query1.finance.yahoo.com/v8/finance/chart"
	}
	if cfg.Names == nil {
		cfg.Names = market.CompanyNames
	}
	return &Yahoo{cfg: cfg, client: hc}
}

func (p *Yahoo) Name() string { return p.cfg.Name }

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				ShortName          string  `json:"shortName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"previousClose"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

func (p *Yahoo) Attempt(ctx context.Context, req provider.Request) (market.Quote, error) {
	u := fmt.Sprintf("%s/%s?range=1d&interval=1d", p.cfg.URL, url.PathEscape(req.Symbol))
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
		return market.Quote{}, fmt.Errorf("GET %s -> %d", u, resp.StatusCode)
	}

	var body chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return market.Quote{}, fmt.Errorf("decode: %w", err)
	}
	if len(body.Chart.Result) == 0 {
		return market.Quote{}, provider.ErrNoData
	}
	meta := body.Chart.Result[0].Meta

	// A non-positive price means the chart had no tradable data; treat it
	// the same as an empty response and let the chain advance.
	if meta.RegularMarketPrice <= 0 {
		return market.Quote{}, provider.ErrNoData
	}
	previous := meta.PreviousClose
	if previous == 0 {
		previous = meta.ChartPreviousClose
	}
	if previous == 0 {
		previous = meta.RegularMarketPrice
	}

	name := meta.ShortName
	if name == "" {
		if n, ok := p.cfg.Names[req.Symbol]; ok {
			name = n
		} else {
			name = req.Symbol
		}
	}
	return market.Quote{
		Symbol: req.Symbol,
		Name:   name,
		Price:  round2(meta.RegularMarketPrice),
		Change: round2(meta.RegularMarketPrice - previous),
	}, nil
}
