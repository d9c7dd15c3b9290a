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

// newsAPIMaxWindowDays clamps the lookback window; the upstream free tier
// rejects queries older than a month.
const newsAPIMaxWindowDays = 30

// NewsAPIConfig controls the NewsAPI everything-search adapter. The query is
// broadened with the company display name ("AAPL OR Apple Inc."), resolved
// best-effort from the static table and falling back to the raw symbol.
type NewsAPIConfig struct {
	Name   string
	URL    string
	APIKey string
	// Names resolves display names for query broadening. Defaults to the
	// static company table.
	Names map[string]string
	Now   func() time.Time
}

type NewsAPI struct {
	cfg    NewsAPIConfig
	client *httpx.Client
}

func NewNewsAPI(cfg NewsAPIConfig, hc *httpx.Client) *NewsAPI {
	if cfg.Name == "" {
		cfg.Name = "NewsAPI"
	}
	if cfg.URL == "" {
		cfg.URL = "https://newsapi.org/v2/everything"
	}
	if cfg.Names == nil {
		cfg.Names = market.CompanyNames
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &NewsAPI{cfg: cfg, client: hc}
}

func (p *NewsAPI) Name() string { return p.cfg.Name }

type newsAPIResponse struct {
	Articles []struct {
		Title  string `json:"title"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		PublishedAt string `json:"publishedAt"`
		URL         string `json:"url"`
		Description string `json:"description"`
	} `json:"articles"`
}

func (p *NewsAPI) Attempt(ctx context.Context, req provider.Request) ([]market.NewsItem, error) {
	if p.cfg.APIKey == "" {
		return nil, provider.ErrNotConfigured
	}

	days := req.Days
	if days > newsAPIMaxWindowDays {
		days = newsAPIMaxWindowDays
	}
	from := p.cfg.Now().AddDate(0, 0, -days)

	name := req.Symbol
	if n, ok := p.cfg.Names[req.Symbol]; ok {
		name = n
	}

	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s OR %s", req.Symbol, name))
	q.Set("from", from.Format("2006-01-02"))
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", fmt.Sprintf("%d", market.MaxNewsItems))
	q.Set("apiKey", p.cfg.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.URL+"?"+q.Encode(), http.NoBody)
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

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(body.Articles) == 0 {
		return nil, provider.ErrNoData
	}

	articles := body.Articles
	if len(articles) > market.MaxNewsItems {
		articles = articles[:market.MaxNewsItems]
	}
	items := make([]market.NewsItem, 0, len(articles))
	for i, a := range articles {
		summary := a.Description
		if summary == "" {
			summary = a.Title
		}
		items = append(items, market.NewsItem{
			ID:          fmt.Sprintf("%s_na_%d", req.Symbol, i),
			Title:       a.Title,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
			URL:         a.URL,
			Summary:     market.TruncateSummary(summary),
		})
	}
	return items, nil
}
