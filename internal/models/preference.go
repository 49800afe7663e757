package models

import (
	"slices"
	"time"
)

// 사용자당 하나인 온보딩 설정
type Preference struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	InvestorType string    `json:"investorType"`
	Assets       []string  `json:"assets"`
	ContentTypes []string  `json:"contentTypes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// 콘텐츠 타입 선택 여부
func (p *Preference) Wants(contentType string) bool {
	return p != nil && slices.Contains(p.ContentTypes, contentType)
}
