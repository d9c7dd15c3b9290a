package market

// Static lookup tables. These are process-lifetime, read-only configuration;
// resolvers take them as values so tests can swap them out.

// CompanyNames maps symbols to display names for quote responses.
var CompanyNames = map[string]string{
	"AAPL":    "Apple Inc.",
	"TSLA":    "Tesla Inc.",
	"GOOGL":   "Alphabet Inc.",
	"AMZN":    "Amazon.com Inc.",
	"MSFT":    "Microsoft Corporation",
	"NVDA":    "NVIDIA Corporation",
	"META":    "Meta Platforms Inc.",
	"NFLX":    "Netflix Inc.",
	"AMD":     "Advanced Micro Devices Inc.",
	"INTC":    "Intel Corporation",
	"BTC-USD": "Bitcoin USD",
	"ETH-USD": "Ethereum USD",
}

// CompanyName resolves a display name for a symbol, falling back to the
// symbol itself when the table has no entry.
func CompanyName(symbol string) string {
	if n, ok := CompanyNames[symbol]; ok {
		return n
	}
	return symbol
}

// ShortNames maps symbols to the short company names used by the synthetic
// news generator.
var ShortNames = map[string]string{
	"AAPL":  "Apple",
	"TSLA":  "Tesla",
	"GOOGL": "Google",
	"AMZN":  "Amazon",
	"MSFT":  "Microsoft",
	"NVDA":  "NVIDIA",
	"META":  "Meta",
	"NFLX":  "Netflix",
	"AMD":   "AMD",
	"INTC":  "Intel",
}

// ShortName resolves a short company name, falling back to the symbol.
func ShortName(symbol string) string {
	if n, ok := ShortNames[symbol]; ok {
		return n
	}
	return symbol
}

// TickerAliases maps upper-case company names and ticker spellings to
// resolvable symbols for search.
var TickerAliases = map[string]string{
	"APPLE": "AAPL", "AAPL": "AAPL",
	"TESLA": "TSLA", "TSLA": "TSLA",
	"GOOGLE": "GOOGL", "GOOGL": "GOOGL", "GOOG": "GOOG",
	"AMAZON": "AMZN", "AMZN": "AMZN",
	"MICROSOFT": "MSFT", "MSFT": "MSFT",
	"NVIDIA": "NVDA", "NVDA": "NVDA",
	"META": "META", "FACEBOOK": "META",
	"NETFLIX": "NFLX", "NFLX": "NFLX",
	"AMD": "AMD", "INTEL": "INTC", "INTC": "INTC",
	"BITCOIN": "BTC-USD", "BTC": "BTC-USD",
	"ETHEREUM": "ETH-USD", "ETH": "ETH-USD",
	"COINBASE": "COIN", "COIN": "COIN",
	"WALMART": "WMT", "WMT": "WMT",
	"JPMORGAN": "JPM", "JPM": "JPM",
	"VISA": "V", "MASTERCARD": "MA", "MA": "MA",
	"DISNEY": "DIS", "DIS": "DIS",
	"NIKE": "NKE", "NKE": "NKE",
	"STARBUCKS": "SBUX", "SBUX": "SBUX",
	"PAYPAL": "PYPL", "PYPL": "PYPL",
	"UBER": "UBER", "LYFT": "LYFT",
	"SPOTIFY": "SPOT", "SPOT": "SPOT",
}

// DefaultSymbols is the set resolved for an empty search query.
var DefaultSymbols = []string{"AAPL", "TSLA", "GOOGL", "AMZN", "MSFT", "NVDA", "META", "BTC-USD"}

// FallbackQuotes is the static last-resort quote table served when every
// dynamic quote provider is unavailable.
var FallbackQuotes = map[string]Quote{
	"AAPL":    {Symbol: "AAPL", Name: "Apple Inc.", Price: 195.71, Change: 2.15},
	"TSLA":    {Symbol: "TSLA", Name: "Tesla, Inc.", Price: 354.82, Change: -5.32},
	"GOOGL":   {Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 175.23, Change: 1.84},
	"AMZN":    {Symbol: "AMZN", Name: "Amazon.com Inc.", Price: 182.15, Change: 3.21},
	"MSFT":    {Symbol: "MSFT", Name: "Microsoft Corp.", Price: 425.17, Change: 2.05},
	"NVDA":    {Symbol: "NVDA", Name: "NVIDIA Corp.", Price: 875.28, Change: 12.50},
	"META":    {Symbol: "META", Name: "Meta Platforms Inc.", Price: 498.12, Change: 5.67},
	"NFLX":    {Symbol: "NFLX", Name: "Netflix Inc.", Price: 632.45, Change: -2.13},
	"AMD":     {Symbol: "AMD", Name: "Advanced Micro Devices", Price: 178.34, Change: 4.21},
	"INTC":    {Symbol: "INTC", Name: "Intel Corp.", Price: 42.89, Change: -0.34},
	"BTC-USD": {Symbol: "BTC-USD", Name: "Bitcoin USD", Price: 97250.00, Change: 1850.00},
	"ETH-USD": {Symbol: "ETH-USD", Name: "Ethereum USD", Price: 3521.45, Change: 125.30},
}

// rangeDays translates a time-range token to a day count.
var rangeDays = map[string]int{
	"1d": 1,
	"1w": 7,
	"2w": 14,
	"1m": 30,
	"3m": 90,
	"6m": 180,
	"1y": 365,
	"3y": 1095,
	"5y": 1825,
}

// RangeDays returns the day window for a range token. Unknown tokens default
// to one week.
func RangeDays(token string) int {
	if d, ok := rangeDays[token]; ok {
		return d
	}
	return 7
}
