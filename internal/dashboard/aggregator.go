// Package dashboard 사용자 설정, 외부 시세/뉴스, 고정 콘텐츠로 대시보드 구성
package dashboard

import (
	"context"
	"math"
	"math/rand"
	"time"

	"CryptoAdvisor/internal/apperr"
	"CryptoAdvisor/internal/metrics"
	"CryptoAdvisor/internal/models"

	"github.com/sirupsen/logrus"
)

type PreferenceReader interface {
	Get(ctx context.Context, userID string) (*models.Preference, error)
}

type PriceProvider interface {
	SimplePrice(ctx context.Context, ids []string, vsCurrency string) (map[string]float64, error)
}

type NewsProvider interface {
	Posts(ctx context.Context, currencies []string, limit int) ([]models.NewsItem, error)
}

// 외부 API 호출 결과
// 실패는 Aggregator 밖으로 나가지 않고 대체 데이터로 바뀜
type result[T any] struct {
	value T
	err   error
}

func (r result[T]) or(fallback func() T) (T, bool) {
	if r.err != nil {
		return fallback(), false
	}
	return r.value, true
}

type Aggregator struct {
	prefs   PreferenceReader
	prices  PriceProvider
	news    NewsProvider
	timeout time.Duration
	log     logrus.FieldLogger

	now  func() time.Time
	pick func(n int) int
}

// news 가 nil 이면 항상 고정 뉴스 목록 사용
func NewAggregator(prefs PreferenceReader, prices PriceProvider, news NewsProvider, timeout time.Duration, log logrus.FieldLogger) *Aggregator {
	return &Aggregator{
		prefs:   prefs,
		prices:  prices,
		news:    news,
		timeout: timeout,
		log:     log,
		now:     time.Now,
		pick:    rand.Intn,
	}
}

// 대시보드 생성
// 설정 조회 실패만 에러로 반환, 외부 API 실패는 대체 데이터로 채움
func (a *Aggregator) Build(ctx context.Context, userID string) (models.DashboardSections, error) {
	// 1. 사용자 설정 조회 (온보딩 전이면 기본 자산)
	pref, err := a.prefs.Get(ctx, userID)
	if err != nil {
		return models.DashboardSections{}, apperr.Internal("Failed to build dashboard", err)
	}

	assets := defaultAssets
	if pref != nil {
		assets = pref.Assets
	}
	log := a.log.WithField("user_id", userID)

	// 2. 시세, 뉴스, 인사이트, 밈 구성
	// 클라이언트가 끊겨도 외부 호출은 계속
	upstreamCtx := context.WithoutCancel(ctx)

	return models.DashboardSections{
		Prices:  a.buildPrices(upstreamCtx, log, assets),
		News:    a.buildNews(upstreamCtx, log, assets),
		Insight: a.buildInsight(assets, pref),
		Meme:    memes[a.pick(len(memes))].meme(),
	}, nil
}

func (a *Aggregator) buildPrices(ctx context.Context, log logrus.FieldLogger, assets []string) []models.Price {
	var ids []string
	for _, symbol := range assets {
		if id, ok := coinGeckoIDs[symbol]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return []models.Price{}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	quotes, err := a.prices.SimplePrice(ctx, ids, "usd")
	res := result[map[string]float64]{value: quotes, err: err}

	quotes, ok := res.or(func() map[string]float64 { return nil })
	if !ok {
		log.WithError(res.err).Warn("buildPrices(): price provider failed, serving unpriced symbols")
		metrics.RecordFallback("prices", "upstream_error")
		return unpriced(assets)
	}

	prices := []models.Price{}
	for _, symbol := range assets {
		id, known := coinGeckoIDs[symbol]
		if !known {
			continue
		}
		usd, quoted := quotes[id]
		if !quoted {
			continue
		}
		prices = append(prices, models.Price{Symbol: symbol, Name: id, USD: usd})
	}
	return prices
}

// 시세 실패 시 요청한 모든 심볼을 시세 없이 반환
func unpriced(assets []string) []models.Price {
	prices := make([]models.Price, 0, len(assets))
	for _, symbol := range assets {
		name, ok := coinGeckoIDs[symbol]
		if !ok {
			name = symbol
		}
		prices = append(prices, models.Price{Symbol: symbol, Name: name, USD: math.NaN()})
	}
	return prices
}

func (a *Aggregator) buildNews(ctx context.Context, log logrus.FieldLogger, assets []string) []models.NewsItem {
	if a.news == nil {
		metrics.RecordFallback("news", "not_configured")
		return fallbackNews()
	}
	if len(assets) == 0 {
		metrics.RecordFallback("news", "no_assets")
		return fallbackNews()
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	items, err := a.news.Posts(ctx, assets, maxNewsItems)
	res := result[[]models.NewsItem]{value: items, err: err}

	items, ok := res.or(fallbackNews)
	if !ok {
		log.WithError(res.err).Warn("buildNews(): news provider failed, serving static headlines")
		metrics.RecordFallback("news", "upstream_error")
	}
	return items
}

func (a *Aggregator) buildInsight(assets []string, pref *models.Preference) models.Insight {
	return models.Insight{
		ID:   "insight-" + a.now().UTC().Format(time.DateOnly),
		Text: insightText(assets, pref.Wants("charts"), pref.Wants("social")),
	}
}
