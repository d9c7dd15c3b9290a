package news_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sentify/internal/news"
	"sentify/internal/provider"
)

func TestSynthetic_AlwaysYieldsTwelveArticles(t *testing.T) {
	t.Parallel()

	p := news.NewSynthetic()
	items, err := p.Attempt(t.Context(), provider.Request{Symbol: "AAPL", Days: 7})
	require.NoError(t, err)
	require.Len(t, items, 12)
}

func TestSynthetic_SubstitutesCompanyName(t *testing.T) {
	t.Parallel()

	p := news.NewSynthetic()
	items, err := p.Attempt(t.Context(), provider.Request{Symbol: "TSLA"})
	require.NoError(t, err)

	require.Equal(t, "Tesla Reports Strong Q4 Earnings, Beats Expectations", items[0].Title)
	require.Equal(t, "Financial Times", items[0].Source)
	require.Equal(t, "https://example.com/news/tsla-earnings", items[0].URL)
	require.Contains(t, items[0].Summary, "Tesla announced its Q4 earnings")
}

func TestSynthetic_UnknownSymbolUsesSymbolAsCompany(t *testing.T) {
	t.Parallel()

	p := news.NewSynthetic()
	items, err := p.Attempt(t.Context(), provider.Request{Symbol: "XYZ"})
	require.NoError(t, err)
	require.Contains(t, items[0].Title, "XYZ")
}

func TestSynthetic_StableIDsAndDescendingTimestamps(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := news.NewSynthetic()
	p.Now = func() time.Time { return now }

	items, err := p.Attempt(t.Context(), provider.Request{Symbol: "MSFT"})
	require.NoError(t, err)

	require.Equal(t, "MSFT_mock_1", items[0].ID)
	require.Equal(t, "MSFT_mock_12", items[11].ID)

	require.Equal(t, now.Add(-2*time.Hour).Format(time.RFC3339), items[0].PublishedAt)
	require.Equal(t, now.Add(-168*time.Hour).Format(time.RFC3339), items[11].PublishedAt)

	prev := items[0].PublishedAt
	for _, item := range items[1:] {
		require.Less(t, item.PublishedAt, prev, "timestamps must strictly descend")
		prev = item.PublishedAt
	}
}
