// Package market 외부 시세/뉴스 API 클라이언트
package market

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"CryptoAdvisor/internal/metrics"

	"github.com/tidwall/gjson"
)

// 외부 API 호출 실패, API 응답으로는 나가지 않음
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string { return e.Provider + ": " + e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

// 응답 바디 최대 크기
const maxBodyBytes = 2 << 20

// GET 요청 후 JSON 파싱
// 2xx 가 아니거나 JSON 이 아니면 에러
func getJSON(ctx context.Context, client *http.Client, provider, endpoint string, params url.Values) (gjson.Result, error) {
	start := time.Now()
	result, err := doGet(ctx, client, endpoint, params)
	metrics.RecordProviderCall(provider, time.Since(start), err)
	if err != nil {
		return gjson.Result{}, &UpstreamError{Provider: provider, Err: err}
	}
	return result, nil
}

func doGet(ctx context.Context, client *http.Client, endpoint string, params url.Values) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("create request: %w", redactURL(err, endpoint))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("request failed: %w", redactURL(err, endpoint))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return gjson.Result{}, fmt.Errorf("unexpected status %s", resp.Status)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("malformed response body")
	}
	return gjson.ParseBytes(body), nil
}

// *url.Error 에서 쿼리 제거 (access token 포함)
func redactURL(err error, endpoint string) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = endpoint
	}
	return err
}
