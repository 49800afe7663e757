package market

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const coinGeckoProvider = "coingecko"

// CoinGecko simple price 클라이언트 (API 키 불필요)
type CoinGecko struct {
	baseURL string
	client  *http.Client
}

func NewCoinGecko(baseURL string, timeout time.Duration) *CoinGecko {
	return &CoinGecko{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// id 목록 시세를 한 번에 조회
// 시세가 숫자인 id 만 결과에 포함
func (c *CoinGecko) SimplePrice(ctx context.Context, ids []string, vsCurrency string) (map[string]float64, error) {
	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	params.Set("vs_currencies", vsCurrency)

	body, err := getJSON(ctx, c.client, coinGeckoProvider, c.baseURL+"/api/v3/simple/price", params)
	if err != nil {
		return nil, err
	}
	if !body.IsObject() {
		return nil, &UpstreamError{Provider: coinGeckoProvider, Err: errors.New("price response is not an object")}
	}

	byID := body.Map()
	quotes := make(map[string]float64, len(ids))
	for _, id := range ids {
		if q, ok := byID[id].Map()[vsCurrency]; ok && q.Type == gjson.Number {
			quotes[id] = q.Float()
		}
	}
	return quotes, nil
}
