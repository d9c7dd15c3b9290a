package main

import (
	"log"
	"net"
	"os"
	"strings"
	"time"

	"sentify/internal/api"
	"sentify/internal/cache"
	"sentify/internal/config"
	"sentify/internal/httpx"
	"sentify/internal/market"
	"sentify/internal/news"
	"sentify/internal/provider"
	"sentify/internal/provider/ratelimit"
	"sentify/internal/quote"
	"sentify/internal/sentiment"
)

const yahooCourtesyDelay = 200 * time.Millisecond

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	hc := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	quotes := quote.NewResolver(buildQuoteChain(cfg, hc), cache.New[market.Quote](ttl))
	newsResolver := news.NewResolver(buildNewsChain(cfg, hc), cache.New[[]market.NewsItem](ttl))
	analyzer := buildAnalyzer(cfg)

	if sources := cfg.ActiveNewsSources(); len(sources) > 0 {
		log.Printf("news sources configured: %s", strings.Join(sources, ", "))
	} else {
		log.Printf("no news sources configured, serving synthetic articles only")
	}
	if cfg.AlphaVantage.APIKey == "" {
		log.Printf("Alpha Vantage not configured, quotes fall through to Yahoo")
	}
	if analyzer.Available() {
		log.Printf("sentiment endpoint: %s", cfg.Sentiment.Endpoint)
	} else {
		log.Printf("sentiment endpoint not configured, /api/sentiment returns 503")
	}

	handlers := api.NewHandlers(quotes, newsResolver, analyzer, cfg.NewsAPI.APIKey != "")
	addr := net.JoinHostPort("", cfg.Server.Port)
	srv := api.NewServer(addr, handlers)

	log.Printf("listening on %s", addr)
	if err := srv.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func buildQuoteChain(cfg config.Config, hc *httpx.Client) *provider.Chain[market.Quote] {
	var av provider.Provider[market.Quote] = quote.NewAlphaVantage(quote.AlphaVantageConfig{
		APIKey: cfg.AlphaVantage.APIKey,
	}, hc)
	// Rate-gate only a configured provider. Without a key the adapter answers
	// ErrNotConfigured immediately and must not wait for a token first.
	if cfg.AlphaVantage.APIKey != "" && cfg.AlphaVantage.MaxRequestsPerMinute > 0 {
		av = &ratelimit.TokenBucketProvider[market.Quote]{
			P:  av,
			TB: ratelimit.NewTokenBucket(float64(cfg.AlphaVantage.MaxRequestsPerMinute)/60.0, cfg.AlphaVantage.Burst),
		}
	}
	yahoo := &ratelimit.Delay[market.Quote]{
		P:     quote.NewYahoo(quote.YahooConfig{}, hc),
		Pause: yahooCourtesyDelay,
	}
	return provider.NewChain[market.Quote](av, yahoo, quote.NewStatic(market.FallbackQuotes))
}

func buildNewsChain(cfg config.Config, hc *httpx.Client) *provider.Chain[[]market.NewsItem] {
	return provider.NewChain[[]market.NewsItem](
		news.NewFinnhub(news.FinnhubConfig{
			APIKeys: []string{cfg.Finnhub.APIKey, cfg.Finnhub.APIKey2},
		}, hc),
		news.NewAlphaVantage(news.AlphaVantageConfig{
			APIKey: cfg.AlphaVantage.APIKey,
		}, hc),
		news.NewNewsAPI(news.NewsAPIConfig{
			APIKey: cfg.NewsAPI.APIKey,
		}, hc),
		news.NewNewsData(news.NewsDataConfig{
			APIKey: cfg.NewsData.APIKey,
		}, hc),
		news.NewPolygon(news.PolygonConfig{
			APIKey: cfg.Polygon.APIKey,
		}, hc),
		news.NewSynthetic(),
	)
}

func buildAnalyzer(cfg config.Config) *sentiment.Analyzer {
	if cfg.Sentiment.Endpoint == "" {
		return sentiment.NewAnalyzer(nil)
	}
	client, err := sentiment.NewClient(cfg.Sentiment.Endpoint)
	if err != nil {
		log.Printf("sentiment client: %v", err)
		return sentiment.NewAnalyzer(nil)
	}
	return sentiment.NewAnalyzer(client)
}
