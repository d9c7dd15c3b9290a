package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sentify/internal/api"
	"sentify/internal/market"
	"sentify/internal/sentiment"
)

type stubQuotes struct {
	results []market.Quote
}

func (s *stubQuotes) Search(_ context.Context, _ string) []market.Quote {
	return s.results
}

type stubNews struct {
	symbol, rangeToken string
	items              []market.NewsItem
}

func (s *stubNews) News(_ context.Context, symbol, rangeToken string) []market.NewsItem {
	s.symbol, s.rangeToken = symbol, rangeToken
	return s.items
}

type stubAnalyzer struct {
	available bool
	results   []sentiment.Result
	err       error
}

func (s *stubAnalyzer) Available() bool { return s.available }

func (s *stubAnalyzer) Analyze(_ context.Context, _ []string) ([]sentiment.Result, error) {
	return s.results, s.err
}

func newTestServer(quotes *stubQuotes, newsStub *stubNews, analyzer *stubAnalyzer, newsAPIConfigured bool) *api.Server {
	if quotes == nil {
		quotes = &stubQuotes{}
	}
	if newsStub == nil {
		newsStub = &stubNews{}
	}
	if analyzer == nil {
		analyzer = &stubAnalyzer{}
	}
	return api.NewServer(":0", api.NewHandlers(quotes, newsStub, analyzer, newsAPIConfigured))
}

func doRequest(srv *api.Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func TestSearch_ReturnsQuotes(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubQuotes{results: []market.Quote{
		{Symbol: "AAPL", Name: "Apple Inc.", Price: 195.71, Change: 2.15},
	}}, nil, nil, false)

	w := doRequest(srv, http.MethodGet, "/api/search?q=apple", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []market.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "AAPL", got[0].Symbol)
}

func TestSearch_EmptyResultIsEmptyArray(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubQuotes{results: []market.Quote{}}, nil, nil, false)
	w := doRequest(srv, http.MethodGet, "/api/search?q=aaa", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestNews_RequiresSymbol(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil, nil, nil, false)
	w := doRequest(srv, http.MethodGet, "/api/news", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Symbol parameter is required")
}

func TestNews_DefaultsRangeToOneWeek(t *testing.T) {
	t.Parallel()

	stub := &stubNews{items: []market.NewsItem{{ID: "AAPL_fh_0"}}}
	srv := newTestServer(nil, stub, nil, false)

	w := doRequest(srv, http.MethodGet, "/api/news?symbol=AAPL", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "AAPL", stub.symbol)
	require.Equal(t, "1w", stub.rangeToken)
}

func TestNews_PassesRangeThrough(t *testing.T) {
	t.Parallel()

	stub := &stubNews{}
	srv := newTestServer(nil, stub, nil, false)

	w := doRequest(srv, http.MethodGet, "/api/news?symbol=TSLA&range=3m", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "3m", stub.rangeToken)
}

func TestSentiment_UnavailableModel(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil, nil, &stubAnalyzer{available: false}, false)
	w := doRequest(srv, http.MethodPost, "/api/sentiment", `{"texts":["x"]}`)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSentiment_RejectsInvalidBody(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil, nil, &stubAnalyzer{available: true}, false)
	w := doRequest(srv, http.MethodPost, "/api/sentiment", `{not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSentiment_RejectsEmptyTexts(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil, nil, &stubAnalyzer{available: true}, false)

	w := doRequest(srv, http.MethodPost, "/api/sentiment", `{"texts":[]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "No texts provided")
}

func TestSentiment_ReturnsResults(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil, nil, &stubAnalyzer{
		available: true,
		results: []sentiment.Result{{
			Sentiment:  "positive",
			Confidence: 0.7,
			Scores:     sentiment.Scores{Positive: 0.7, Negative: 0.2, Neutral: 0.1},
		}},
	}, false)

	w := doRequest(srv, http.MethodPost, "/api/sentiment", `{"texts":["great quarter"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got []sentiment.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "positive", got[0].Sentiment)
}

func TestSentiment_MidBatchModelLoss(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil, nil, &stubAnalyzer{
		available: true,
		err:       sentiment.ErrModelUnavailable,
	}, false)

	w := doRequest(srv, http.MethodPost, "/api/sentiment", `{"texts":["x"]}`)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil, nil, nil, true)
	w := doRequest(srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "ok", got["status"])
	require.Equal(t, true, got["newsApiConfigured"])
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil, nil, nil, false)
	w := doRequest(srv, http.MethodOptions, "/api/search", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
