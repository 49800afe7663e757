package dashboard

import (
	"net/url"
	"strings"

	"CryptoAdvisor/internal/models"
)

// 티커 -> CoinGecko id
var coinGeckoIDs = map[string]string{
	"BTC": "bitcoin",
	"ETH": "ethereum",
	"SOL": "solana",
	"BNB": "binancecoin",
	"ADA": "cardano",
}

var defaultAssets = []string{"BTC", "ETH"}

const maxNewsItems = 6

func fallbackNews() []models.NewsItem {
	return []models.NewsItem{
		{ID: "n1", Title: "Bitcoin holds key level into the week", URL: "https://example.com/bitcoinkey", Source: "Static"},
		{ID: "n2", Title: "ETH dev update: progress on scaling", URL: "https://example.com/ethscaling", Source: "Static"},
	}
}

type memeTemplate struct {
	id, text, top, bottom, template string
}

var memes = []memeTemplate{
	{id: "m1", text: "WAGMI 🚀 (but set stop-loss)", top: "WAGMI 🚀", bottom: "but set stop-loss", template: "doge"},
	{id: "m2", text: "HODL strategy: do nothing, but with conviction.", top: "HODL", bottom: "with conviction", template: "stonks"},
	{id: "m3", text: "FOMO is not a strategy.", top: "FOMO", bottom: "is not a strategy", template: "gru"},
}

func (m memeTemplate) meme() *models.Meme {
	return &models.Meme{ID: m.id, Text: m.text, Image: memegenURL(m.template, m.top, m.bottom)}
}

func memegenURL(template, top, bottom string) string {
	return "https://api.memegen.link/images/" + template + "/" + memegenText(top) + "/" + memegenText(bottom) + ".png?font=impact"
}

// memegen 캡션 인코딩 ("_" 는 공백)
func memegenText(s string) string {
	return url.PathEscape(strings.ReplaceAll(s, " ", "_"))
}

func insightText(assets []string, charts, social bool) string {
	focus := strings.Join(assets[:min(2, len(assets))], " & ")
	if focus == "" {
		focus = "BTC & ETH"
	}

	var b strings.Builder
	b.WriteString("Today's focus: " + focus + ".\n")
	b.WriteString("Consider watching funding rates, liquidity around round numbers, and macro prints.\n")
	if charts {
		b.WriteString("You asked for charts – check local S/R and 20/50/200 MAs.\n")
	}
	if social {
		b.WriteString("Social spikes can fake out – confirm with volume.\n")
	}
	b.WriteString("Not financial advice. DYOR. 🧠")
	return b.String()
}
