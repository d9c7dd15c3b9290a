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

// NewsDataConfig controls the NewsData.io keyword-search adapter.
type NewsDataConfig struct {
	Name   string
	URL    string
	APIKey string
}

type NewsData struct {
	cfg    NewsDataConfig
	client *httpx.Client
}

func NewNewsData(cfg NewsDataConfig, hc *httpx.Client) *NewsData {
	if cfg.Name == "" {
		cfg.Name = "NewsData"
	}
	if cfg.URL == "" {
		cfg.URL = "https://newsdata.io/api/1/news"
	}
	return &NewsData{cfg: cfg, client: hc}
}

func (p *NewsData) Name() string { return p.cfg.Name }

type newsDataResponse struct {
	Results []struct {
		Title       string `json:"title"`
		SourceID    string `json:"source_id"`
		PubDate     string `json:"pubDate"`
		Link        string `json:"link"`
		Description string `json:"description"`
	} `json:"results"`
}

func (p *NewsData) Attempt(ctx context.Context, req provider.Request) ([]market.NewsItem, error) {
	if p.cfg.APIKey == "" {
		return nil, provider.ErrNotConfigured
	}

	u := fmt.Sprintf("%s?apikey=%s&q=%s&language=en",
		p.cfg.URL, url.QueryEscape(p.cfg.APIKey), url.QueryEscape(req.Symbol))
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

	var body newsDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(body.Results) == 0 {
		return nil, provider.ErrNoData
	}

	results := body.Results
	if len(results) > market.MaxNewsItems {
		results = results[:market.MaxNewsItems]
	}
	items := make([]market.NewsItem, 0, len(results))
	for i, a := range results {
		source := a.SourceID
		if source == "" {
			source = "NewsData"
		}
		items = append(items, market.NewsItem{
			ID:          fmt.Sprintf("%s_nd_%d", req.Symbol, i),
			Title:       a.Title,
			Source:      source,
			PublishedAt: a.PubDate,
			URL:         a.Link,
			Summary:     market.TruncateSummary(a.Description),
		})
	}
	return items, nil
}
