package market

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"CryptoAdvisor/internal/models"
)

const cryptoPanicProvider = "cryptopanic"

// CryptoPanic 뉴스 클라이언트 (access token 필요)
type CryptoPanic struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewCryptoPanic(baseURL, token string, timeout time.Duration) *CryptoPanic {
	return &CryptoPanic{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// 해당 코인 관련 rising 공개 뉴스, 최대 limit 건
func (c *CryptoPanic) Posts(ctx context.Context, currencies []string, limit int) ([]models.NewsItem, error) {
	params := url.Values{}
	params.Set("auth_token", c.token)
	params.Set("currencies", strings.Join(currencies, ","))
	params.Set("filter", "rising")
	params.Set("public", "true")

	body, err := getJSON(ctx, c.client, cryptoPanicProvider, c.baseURL+"/api/v1/posts/", params)
	if err != nil {
		return nil, err
	}

	items := []models.NewsItem{}
	for _, post := range body.Get("results").Array() {
		if len(items) == limit {
			break
		}
		source := post.Get("source.title").String()
		if source == "" {
			source = "CryptoPanic"
		}
		items = append(items, models.NewsItem{
			ID:     post.Get("id").String(),
			Title:  post.Get("title").String(),
			URL:    post.Get("url").String(),
			Source: source,
		})
	}
	return items, nil
}
