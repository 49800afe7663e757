package models

import (
	"encoding/json"
	"math"
)

// 대시보드 시세 한 건
// 시세를 못 받으면 USD 는 NaN, JSON 에는 null 로 인코딩
type Price struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	USD    float64 `json:"usd"`
}

func (p Price) Available() bool { return !math.IsNaN(p.USD) }

func (p Price) MarshalJSON() ([]byte, error) {
	var usd *float64
	if p.Available() {
		usd = &p.USD
	}
	return json.Marshal(struct {
		Symbol string   `json:"symbol"`
		Name   string   `json:"name"`
		USD    *float64 `json:"usd"`
	}{p.Symbol, p.Name, usd})
}

type NewsItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

type Insight struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Meme struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Image string `json:"image"`
}

// 요청마다 새로 계산, 저장하지 않음
type DashboardSections struct {
	Prices  []Price    `json:"prices"`
	News    []NewsItem `json:"news"`
	Insight Insight    `json:"insight"`
	Meme    *Meme      `json:"meme"`
}
