package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type Server struct {
	Port              string `json:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type AlphaVantage struct {
	APIKey               string `json:"api_key"`
	MaxRequestsPerMinute int    `json:"max_requests_per_minute"`
	Burst                int    `json:"burst"`
}

type Finnhub struct {
	APIKey  string `json:"api_key"`
	APIKey2 string `json:"api_key_2"`
}

type NewsAPI struct {
	APIKey string `json:"api_key"`
}

type NewsData struct {
	APIKey string `json:"api_key"`
}

type Polygon struct {
	APIKey string `json:"api_key"`
}

type Sentiment struct {
	// Endpoint is the base URL of the FinBERT inference service. Empty means
	// the classifier is unavailable and /api/sentiment returns 503.
	Endpoint string `json:"endpoint"`
}

type Cache struct {
	TTLSeconds int `json:"ttl_sec"`
}

type Config struct {
	Server       Server       `json:"server"`
	AlphaVantage AlphaVantage `json:"alphavantage"`
	Finnhub      Finnhub      `json:"finnhub"`
	NewsAPI      NewsAPI      `json:"newsapi"`
	NewsData     NewsData     `json:"newsdata"`
	Polygon      Polygon      `json:"polygon"`
	Sentiment    Sentiment    `json:"sentiment"`
	Cache        Cache        `json:"cache"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "5000", RequestTimeoutSec: 10},
		AlphaVantage: AlphaVantage{
			MaxRequestsPerMinute: 5,
			Burst:                1,
		},
		Cache: Cache{TTLSeconds: 300},
	}
}

// Load reads JSON config from path. If path is empty or the file does not
// exist, it returns defaults. Environment variables override credentials so
// keys stay out of checked-in config files. A missing credential disables
// that provider rather than failing startup.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Server.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("CACHE_TTL_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Cache.TTLSeconds = x
		}
	}
	if v := os.Getenv("ALPHA_VANTAGE_KEY"); v != "" {
		cfg.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_MAX_RPM"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x >= 0 {
			cfg.AlphaVantage.MaxRequestsPerMinute = x
		}
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		cfg.Finnhub.APIKey = v
	}
	if v := os.Getenv("FINNHUB_API_KEY_2"); v != "" {
		cfg.Finnhub.APIKey2 = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		cfg.NewsAPI.APIKey = v
	}
	if v := os.Getenv("NEWSDATA_API_KEY"); v != "" {
		cfg.NewsData.APIKey = v
	}
	if v := os.Getenv("POLYGON_API_KEY"); v != "" {
		cfg.Polygon.APIKey = v
	}
	if v := os.Getenv("SENTIMENT_ENDPOINT"); v != "" {
		cfg.Sentiment.Endpoint = v
	}
}

// ActiveNewsSources lists the configured upstream news sources for startup
// logging and diagnostics.
func (c Config) ActiveNewsSources() []string {
	var out []string
	if c.Finnhub.APIKey != "" {
		out = append(out, "Finnhub")
	}
	if c.Finnhub.APIKey2 != "" {
		out = append(out, "Finnhub-2")
	}
	if c.AlphaVantage.APIKey != "" {
		out = append(out, "Alpha Vantage")
	}
	if c.NewsAPI.APIKey != "" {
		out = append(out, "NewsAPI")
	}
	if c.NewsData.APIKey != "" {
		out = append(out, "NewsData")
	}
	if c.Polygon.APIKey != "" {
		out = append(out, "Polygon")
	}
	return out
}
