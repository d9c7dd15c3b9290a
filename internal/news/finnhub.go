// Package news contains the news provider adapters and the cached resolver
// that drives them as an ordered fallback chain.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"sentify/internal/httpx"
	"sentify/internal/market"
	"sentify/internal/provider"
)

// FinnhubConfig controls the Finnhub company-news adapter. Two interchangeable
// credentials are supported; a rate-limited key rotates to the next one
// without counting as chain exhaustion.
type FinnhubConfig struct {
	Name    string
	URL     string
	APIKeys []string
	Now     func() time.Time
}

type Finnhub struct {
	cfg    FinnhubConfig
	client *httpx.Client
}

func NewFinnhub(cfg FinnhubConfig, hc *httpx.Client) *Finnhub {
	if cfg.Name == "" {
		cfg.Name = "Finnhub"
	}
	if cfg.URL == "" {
		cfg.URL = "https://finnhub.io/api/v1/company-news"
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Finnhub{cfg: cfg, client: hc}
}

func (p *Finnhub) Name() string { return p.cfg.Name }

type finnhubArticle struct {
	Headline string `json:"headline"`
	Source   string `json:"source"`
	Datetime int64  `json:"datetime"`
	URL      string `json:"url"`
	Summary  string `json:"summary"`
}

func (p *Finnhub) Attempt(ctx context.Context, req provider.Request) ([]market.NewsItem, error) {
	keys := make([]string, 0, len(p.cfg.APIKeys))
	for _, k := range p.cfg.APIKeys {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, provider.ErrNotConfigured
	}

	to := p.cfg.Now()
	from := to.AddDate(0, 0, -req.Days)

	rateLimited := 0
	var lastErr error
	for _, key := range keys {
		u := fmt.Sprintf("%s?symbol=%s&from=%s&to=%s&token=%s",
			p.cfg.URL, url.QueryEscape(req.Symbol),
			from.Format("2006-01-02"), to.Format("2006-01-02"),
			url.QueryEscape(key))
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
		if err != nil {
			return nil, err
		}
		resp, err := p.client.Do(ctx, httpReq)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			rateLimited++
			continue // next credential
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			lastErr = fmt.Errorf("GET %s -> %d", p.cfg.URL, resp.StatusCode)
			continue
		}

		var articles []finnhubArticle
		err = json.NewDecoder(resp.Body).Decode(&articles)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("decode: %w", err)
			continue
		}
		if len(articles) == 0 {
			lastErr = provider.ErrNoData
			continue
		}

		if len(articles) > market.MaxNewsItems {
			articles = articles[:market.MaxNewsItems]
		}
		items := make([]market.NewsItem, 0, len(articles))
		for i, a := range articles {
			source := a.Source
			if source == "" {
				source = "Finnhub"
			}
			items = append(items, market.NewsItem{
				ID:          fmt.Sprintf("%s_fh_%d", req.Symbol, i),
				Title:       a.Headline,
				Source:      source,
				PublishedAt: time.Unix(a.Datetime, 0).UTC().Format(time.RFC3339),
				URL:         a.URL,
				Summary:     market.TruncateSummary(a.Summary),
			})
		}
		return items, nil
	}

	if rateLimited == len(keys) {
		return nil, provider.ErrRateLimited
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, provider.ErrNoData
}
