package market

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplePriceParsesQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin,ethereum,solana", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":64000.5},"ethereum":{"usd":null},"solana":{}}`))
	}))
	defer srv.Close()

	quotes, err := NewCoinGecko(srv.URL+"/", time.Second).SimplePrice(context.Background(), []string{"bitcoin", "ethereum", "solana"}, "usd")

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"bitcoin": 64000.5}, quotes)
}

func TestSimplePriceErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "server error", status: http.StatusTooManyRequests, body: `{"error":"rate limited"}`, wantMsg: "unexpected status"},
		{name: "malformed body", status: http.StatusOK, body: `{"bitcoin":`, wantMsg: "malformed"},
		{name: "not an object", status: http.StatusOK, body: `[1,2]`, wantMsg: "not an object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewCoinGecko(srv.URL, time.Second).SimplePrice(context.Background(), []string{"bitcoin"}, "usd")

			var upstream *UpstreamError
			require.True(t, errors.As(err, &upstream))
			assert.Equal(t, "coingecko", upstream.Provider)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSimplePriceTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewCoinGecko(srv.URL, 20*time.Millisecond).SimplePrice(context.Background(), []string{"bitcoin"}, "usd")
	assert.Error(t, err)
}

func TestPostsMapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/api/v1/posts/", r.URL.Path)
		assert.Equal(t, "secret", q.Get("auth_token"))
		assert.Equal(t, "BTC,SOL", q.Get("currencies"))
		assert.Equal(t, "rising", q.Get("filter"))
		assert.Equal(t, "true", q.Get("public"))
		_, _ = w.Write([]byte(`{"results":[
			{"id":101,"title":"First","url":"https://a.example/1","source":{"title":"CoinDesk"}},
			{"id":102,"title":"Second","url":"https://a.example/2"},
			{"id":103,"title":"Third","url":"https://a.example/3"}
		]}`))
	}))
	defer srv.Close()

	items, err := NewCryptoPanic(srv.URL, "secret", time.Second).Posts(context.Background(), []string{"BTC", "SOL"}, 2)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "101", items[0].ID)
	assert.Equal(t, "CoinDesk", items[0].Source)
	assert.Equal(t, "https://a.example/1", items[0].URL)
	assert.Equal(t, "CryptoPanic", items[1].Source)
}

func TestPostsEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	items, err := NewCryptoPanic(srv.URL, "secret", time.Second).Posts(context.Background(), []string{"BTC"}, 6)

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestPostsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewCryptoPanic(srv.URL, "bad", time.Second).Posts(context.Background(), []string{"BTC"}, 6)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "cryptopanic", upstream.Provider)
}

func TestPostsFailureDoesNotExposeToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewCryptoPanic(srv.URL, "SUPER-SECRET-TOKEN", 20*time.Millisecond).Posts(context.Background(), []string{"BTC"}, 6)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SUPER-SECRET-TOKEN")
	assert.NotContains(t, err.Error(), "auth_token")
	assert.Contains(t, err.Error(), "/api/v1/posts/")
}
