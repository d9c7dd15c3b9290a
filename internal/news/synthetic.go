package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sentify/internal/market"
	"sentify/internal/provider"
)

// Synthetic is the terminal news provider. It always succeeds, generating a
// fixed set of twelve articles that vary only by symbol/company name and a
// fixed descending publication-time schedule, so a UI always has something
// to render.
type Synthetic struct {
	name string
	// Now is the clock; tests override it.
	Now func() time.Time
}

func NewSynthetic() *Synthetic {
	return &Synthetic{name: "Synthetic", Now: time.Now}
}

func (p *Synthetic) Name() string { return p.name }

type syntheticTemplate struct {
	title   string
	source  string
	slug    string
	summary string
}

// Offsets back from now: 2h, 8h, 12h, then 1, 1.25, 2, 2.5, 3, 4, 5, 6 and
// 7 days, one per template in order.
var syntheticOffsets = []time.Duration{
	2 * time.Hour,
	8 * time.Hour,
	12 * time.Hour,
	24 * time.Hour,
	30 * time.Hour,
	48 * time.Hour,
	60 * time.Hour,
	72 * time.Hour,
	96 * time.Hour,
	120 * time.Hour,
	144 * time.Hour,
	168 * time.Hour,
}

var syntheticTemplates = []syntheticTemplate{
	{
		title:   "%s Reports Strong Q4 Earnings, Beats Expectations",
		source:  "Financial Times",
		slug:    "earnings",
		summary: "%s announced its Q4 earnings results today, surpassing analyst expectations with strong revenue growth and improved margins. The company attributed its success to increased demand and operational efficiencies.",
	},
	{
		title:   "Analysts Upgrade %s Stock to \"Buy\" Rating",
		source:  "Bloomberg",
		slug:    "upgrade",
		summary: "Major investment banks have upgraded their rating on %s stock following positive market trends and strong fundamentals. Analysts cite innovation and market expansion as key growth drivers.",
	},
	{
		title:   "%s Announces New Product Launch for 2026",
		source:  "TechCrunch",
		slug:    "product",
		summary: "%s unveiled plans for a groundbreaking new product line expected to launch in early 2026. The announcement has generated significant interest among investors and consumers alike.",
	},
	{
		title:   "Market Outlook: %s Positioned for Growth in Tech Sector",
		source:  "CNBC",
		slug:    "outlook",
		summary: "Industry experts predict continued growth for %s as the tech sector shows resilience. Strong fundamentals and strategic partnerships position the company well for future expansion.",
	},
	{
		title:   "%s Expands International Operations",
		source:  "Reuters",
		slug:    "expansion",
		summary: "%s announced plans to expand its international presence with new facilities in emerging markets. The move is expected to drive revenue growth and increase market share globally.",
	},
	{
		title:   "Investment Firms Increase Stakes in %s",
		source:  "Wall Street Journal",
		slug:    "investment",
		summary: "Several major investment firms have increased their holdings in %s, signaling confidence in the company's long-term prospects. Institutional ownership has reached new highs this quarter.",
	},
	{
		title:   "%s Announces Strategic Partnership with Industry Leader",
		source:  "Business Insider",
		slug:    "partnership",
		summary: "%s has formed a strategic partnership aimed at accelerating innovation and market penetration. The collaboration is expected to create synergies and drive mutual growth.",
	},
	{
		title:   "Quarterly Review: %s Shows Resilience Amid Market Volatility",
		source:  "MarketWatch",
		slug:    "review",
		summary: "Despite broader market challenges, %s has demonstrated remarkable resilience with steady performance metrics and positive investor sentiment throughout the quarter.",
	},
	{
		title:   "%s Receives Industry Recognition for Innovation",
		source:  "Forbes",
		slug:    "award",
		summary: "%s has been recognized with a prestigious industry award for its innovative approach and contributions to technological advancement. The company continues to lead in research and development.",
	},
	{
		title:   "%s Stock Reaches New 52-Week High",
		source:  "Seeking Alpha",
		slug:    "high",
		summary: "Shares of %s have reached a new 52-week high, driven by strong earnings results and positive market sentiment. Analysts remain optimistic about continued upward momentum.",
	},
	{
		title:   "CEO of %s Discusses Future Strategy in Exclusive Interview",
		source:  "The Economist",
		slug:    "interview",
		summary: "In an exclusive interview, the CEO of %s outlined the company's vision for sustainable growth, technological innovation, and commitment to stakeholder value creation over the next five years.",
	},
	{
		title:   "%s Reports Strong Consumer Demand in Holiday Quarter",
		source:  "Associated Press",
		slug:    "demand",
		summary: "%s has reported exceptional consumer demand during the holiday shopping season, with sales figures exceeding projections. The strong performance bodes well for the upcoming fiscal year.",
	},
}

func (p *Synthetic) Attempt(_ context.Context, req provider.Request) ([]market.NewsItem, error) {
	company := market.ShortName(req.Symbol)
	now := p.Now()

	items := make([]market.NewsItem, 0, len(syntheticTemplates))
	for i, t := range syntheticTemplates {
		items = append(items, market.NewsItem{
			ID:          fmt.Sprintf("%s_mock_%d", req.Symbol, i+1),
			Title:       sprintfCompany(t.title, company),
			Source:      t.source,
			PublishedAt: now.Add(-syntheticOffsets[i]).Format(time.RFC3339),
			URL:         fmt.Sprintf("https://example.com/news/%s-%s", strings.ToLower(req.Symbol), t.slug),
			Summary:     sprintfCompany(t.summary, company),
		})
	}
	return items, nil
}

// sprintfCompany fills the single %s placeholder; templates without one are
// returned unchanged.
func sprintfCompany(tmpl, company string) string {
	if !strings.Contains(tmpl, "%s") {
		return tmpl
	}
	return fmt.Sprintf(tmpl, company)
}
