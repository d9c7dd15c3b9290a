package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sentify/internal/market"
	"sentify/internal/sentiment"
)

// QuoteSearcher resolves free-text queries to quotes.
type QuoteSearcher interface {
	Search(ctx context.Context, query string) []market.Quote
}

// NewsFetcher resolves a symbol and range token to articles.
type NewsFetcher interface {
	News(ctx context.Context, symbol, rangeToken string) []market.NewsItem
}

// SentimentAnalyzer classifies a batch of texts.
type SentimentAnalyzer interface {
	Available() bool
	Analyze(ctx context.Context, texts []string) ([]sentiment.Result, error)
}

type Handlers struct {
	quotes            QuoteSearcher
	news              NewsFetcher
	sentiment         SentimentAnalyzer
	newsAPIConfigured bool
}

func NewHandlers(quotes QuoteSearcher, news NewsFetcher, sa SentimentAnalyzer, newsAPIConfigured bool) *Handlers {
	return &Handlers{
		quotes:            quotes,
		news:              news,
		sentiment:         sa,
		newsAPIConfigured: newsAPIConfigured,
	}
}

// Search handles GET /api/search?q=. An empty query yields the default
// symbol set.
func (h *Handlers) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	results := h.quotes.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, results)
}

// News handles GET /api/news?symbol=&range=.
func (h *Handlers) News(c *gin.Context) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Symbol parameter is required"})
		return
	}
	rangeToken := c.DefaultQuery("range", "1w")
	items := h.news.News(c.Request.Context(), symbol, rangeToken)
	if items == nil {
		items = []market.NewsItem{}
	}
	c.JSON(http.StatusOK, items)
}

type sentimentRequest struct {
	Texts []string `json:"texts"`
}

// Sentiment handles POST /api/sentiment.
func (h *Handlers) Sentiment(c *gin.Context) {
	if !h.sentiment.Available() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Sentiment model not available"})
		return
	}
	var req sentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if len(req.Texts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No texts provided"})
		return
	}
	results, err := h.sentiment.Analyze(c.Request.Context(), req.Texts)
	if err != nil {
		if errors.Is(err, sentiment.ErrModelUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Sentiment model not available"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

// Health handles GET /health.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"newsApiConfigured": h.newsAPIConfigured,
	})
}
