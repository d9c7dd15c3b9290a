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

// PolygonConfig controls the Polygon.io reference-news adapter.
type PolygonConfig struct {
	Name   string
	URL    string
	APIKey string
}

type Polygon struct {
	cfg    PolygonConfig
	client *httpx.Client
}

func NewPolygon(cfg PolygonConfig, hc *httpx.Client) *Polygon {
	if cfg.Name == "" {
		cfg.Name = "Polygon"
	}
	if cfg.URL == "" {
		cfg.URL = "https://api.polygon.io/v2/reference/news"
	}
	return &Polygon{cfg: cfg, client: hc}
}

func (p *Polygon) Name() string { return p.cfg.Name }

type polygonResponse struct {
	Results []struct {
		Title     string `json:"title"`
		Publisher struct {
			Name string `json:"name"`
		} `json:"publisher"`
		PublishedUTC string `json:"published_utc"`
		ArticleURL   string `json:"article_url"`
		Description  string `json:"description"`
	} `json:"results"`
}

func (p *Polygon) Attempt(ctx context.Context, req provider.Request) ([]market.NewsItem, error) {
	if p.cfg.APIKey == "" {
		return nil, provider.ErrNotConfigured
	}

	u := fmt.Sprintf("%s?ticker=%s&limit=%d&apiKey=%s",
		p.cfg.URL, url.QueryEscape(req.Symbol), market.MaxNewsItems, url.QueryEscape(p.cfg.APIKey))
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

	var body polygonResponse
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
		source := a.Publisher.Name
		if source == "" {
			source = "Polygon"
		}
		items = append(items, market.NewsItem{
			ID:          fmt.Sprintf("%s_pg_%d", req.Symbol, i),
			Title:       a.Title,
			Source:      source,
			PublishedAt: a.PublishedUTC,
			URL:         a.ArticleURL,
			Summary:     market.TruncateSummary(a.Description),
		})
	}
	return items, nil
}
