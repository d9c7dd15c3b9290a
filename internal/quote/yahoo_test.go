package quote_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sentify/internal/httpx"
	"sentify/internal/provider"
	"sentify/internal/quote"
)

func yahooServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestYahoo_ParsesChartMeta(t *testing.T) {
	t.Parallel()

	srv := yahooServer(t, `{"chart":{"result":[{"meta":{
		"symbol":"TSLA","shortName":"Tesla, Inc.",
		"regularMarketPrice":354.815,"previousClose":360.135}}]}}`)

	p := quote.NewYahoo(quote.YahooConfig{URL: srv.URL}, httpx.New(5*time.Second))
	q, err := p.Attempt(t.Context(), provider.Request{Symbol: "TSLA"})
	require.NoError(t, err)
	require.Equal(t, "TSLA", q.Symbol)
	require.Equal(t, "Tesla, Inc.", q.Name)
	require.InDelta(t, 354.82, q.Price, 1e-9)
	require.InDelta(t, -5.32, q.Change, 1e-9)
}

func TestYahoo_NonPositivePriceIsNoData(t *testing.T) {
	t.Parallel()

	srv := yahooServer(t, `{"chart":{"result":[{"meta":{
		"symbol":"ZZZZ","regularMarketPrice":0}}]}}`)

	p := quote.NewYahoo(quote.YahooConfig{URL: srv.URL}, httpx.New(5*time.Second))
	_, err := p.Attempt(t.Context(), provider.Request{Symbol: "ZZZZ"})
	require.ErrorIs(t, err, provider.ErrNoData)
}

func TestYahoo_EmptyResultIsNoData(t *testing.T) {
	t.Parallel()

	srv := yahooServer(t, `{"chart":{"result":[]}}`)

	p := quote.NewYahoo(quote.YahooConfig{URL: srv.URL}, httpx.New(5*time.Second))
	_, err := p.Attempt(t.Context(), provider.Request{Symbol: "AAPL"})
	require.ErrorIs(t, err, provider.ErrNoData)
}

func TestYahoo_ChartPreviousCloseFallback(t *testing.T) {
	t.Parallel()

	srv := yahooServer(t, `{"chart":{"result":[{"meta":{
		"symbol":"AAPL","regularMarketPrice":100,"chartPreviousClose":90}}]}}`)

	p := quote.NewYahoo(quote.YahooConfig{URL: srv.URL}, httpx.New(5*time.Second))
	q, err := p.Attempt(t.Context(), provider.Request{Symbol: "AAPL"})
	require.NoError(t, err)
	require.InDelta(t, 10.0, q.Change, 1e-9)
}

func TestYahoo_NameFallsBackToTableThenSymbol(t *testing.T) {
	t.Parallel()

	srv := yahooServer(t, `{"chart":{"result":[{"meta":{
		"symbol":"AAPL","regularMarketPrice":100}}]}}`)

	p := quote.NewYahoo(quote.YahooConfig{URL: srv.URL}, httpx.New(5*time.Second))
	q, err := p.Attempt(t.Context(), provider.Request{Symbol: "AAPL"})
	require.NoError(t, err)
	require.Equal(t, "Apple Inc.", q.Name)

	q, err = p.Attempt(t.Context(), provider.Request{Symbol: "XYZ"})
	require.NoError(t, err)
	require.Equal(t, "XYZ", q.Name)
}

func TestYahoo_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := quote.NewYahoo(quote.YahooConfig{URL: srv.URL}, httpx.New(5*time.Second))
	_, err := p.Attempt(t.Context(), provider.Request{Symbol: "AAPL"})
	require.ErrorIs(t, err, provider.ErrRateLimited)
}
