package market

// Quote is the normalized shape returned by all quote providers.
// Prices are rounded to 2 decimals at the provider boundary.
type Quote struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
}

// NewsItem is the normalized shape returned by all news providers.
// ID is unique within a response: symbol + provider tag + ordinal.
type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url"`
	Summary     string `json:"summary"`
}

// MaxNewsItems caps a single news response regardless of upstream payload size.
const MaxNewsItems = 50

// MaxSummaryLen caps NewsItem summaries, counted in characters.
const MaxSummaryLen = 500

// TruncateSummary cuts s to at most MaxSummaryLen characters. It counts runes,
// not bytes, so a multi-byte sequence is never split mid-character.
func TruncateSummary(s string) string {
	if len(s) <= MaxSummaryLen {
		return s
	}
	r := []rune(s)
	if len(r) <= MaxSummaryLen {
		return s
	}
	return string(r[:MaxSummaryLen])
}
