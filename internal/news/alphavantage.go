package news

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

// AlphaVantageConfig controls the Alpha Vantage news-sentiment feed adapter.
// It shares the credential used by the Alpha Vantage quote provider.
type AlphaVantageConfig struct {
	Name   string
	URL    string
	APIKey string
}

type AlphaVantage struct {
	cfg    AlphaVantageConfig
	client *httpx.Client
}

func NewAlphaVantage(cfg AlphaVantageConfig, hc *httpx.Client) *AlphaVantage {
	if cfg.Name == "" {
		cfg.Name = "AlphaVantageNews"
	}
	if cfg.URL == "" {
		cfg.URL = "https://www.alphavantage.co/query"
	}
	return &AlphaVantage{cfg: cfg, client: hc}
}

func (p *AlphaVantage) Name() string { return p.cfg.Name }

type avNewsResponse struct {
	Feed []struct {
		Title         string `json:"title"`
		Source        string `json:"source"`
		TimePublished string `json:"time_published"`
		URL           string `json:"url"`
		Summary       string `json:"summary"`
	} `json:"feed"`
}

func (p *AlphaVantage) Attempt(ctx context.Context, req provider.Request) ([]market.NewsItem, error) {
	if p.cfg.APIKey == "" {
		return nil, provider.ErrNotConfigured
	}

	u := fmt.Sprintf("%s?function=NEWS_SENTIMENT&tickers=%s&apikey=%s&limit=%d",
		p.cfg.URL, url.QueryEscape(req.Symbol), url.QueryEscape(p.cfg.APIKey), market.MaxNewsItems)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(ctx, httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, provider.ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s -> %d", p.cfg.URL, resp.StatusCode)
	}

	var body avNewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(body.Feed) == 0 {
		return nil, provider.ErrNoData
	}

	feed := body.Feed
	if len(feed) > market.MaxNewsItems {
		feed = feed[:market.MaxNewsItems]
	}
	items := make([]market.NewsItem, 0, len(feed))
	for i, a := range feed {
		source := a.Source
		if source == "" {
			source = "Alpha Vantage"
		}
		items = append(items, market.NewsItem{
			ID:          fmt.Sprintf("%s_av_%d", req.Symbol, i),
			Title:       a.Title,
			Source:      source,
			PublishedAt: a.TimePublished,
			URL:         a.URL,
			Summary:     market.TruncateSummary(a.Summary),
		})
	}
	return items, nil
}
