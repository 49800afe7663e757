package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"CryptoAdvisor/internal/auth"
	"CryptoAdvisor/internal/dashboard"
	"CryptoAdvisor/internal/market"
	"CryptoAdvisor/internal/service"
	"CryptoAdvisor/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	store  *storage.Store
}

func newTestServer(t *testing.T, priceHandler http.HandlerFunc) *testServer {
	t.Helper()
	store, err := storage.Open(context.Background(), "file:"+filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	if priceHandler == nil {
		priceHandler = func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"bitcoin":{"usd":65000},"ethereum":{"usd":3200.5}}`))
		}
	}
	prices := httptest.NewServer(priceHandler)
	t.Cleanup(prices.Close)

	logger, _ := test.NewNullLogger()
	authSvc := service.NewAuthService(store, auth.NewTokenIssuer("handler-secret", time.Hour))
	prefSvc := service.NewPreferenceService(store)
	agg := dashboard.NewAggregator(prefSvc, market.NewCoinGecko(prices.URL, time.Second), nil, time.Second, logger)

	router := NewRouter(RouterConfig{
		BasePath:        "/api",
		AllowAllOrigins: true,
		AuthPerSecond:   100,
		AuthBurst:       100,
	}, Dependencies{
		Auth:        authSvc,
		Preferences: prefSvc,
		Votes:       service.NewVoteService(store),
		Dashboard:   agg,
		Users:       store,
		Log:         logger,
	})
	return &testServer{router: router, store: store}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func (s *testServer) signup(t *testing.T, email string) string {
	t.Helper()
	rec, body := s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{"email": email, "password": "pw123456"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return body["token"].(string)
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t, nil)

	rec, body := s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{"email": "a@example.com", "password": "pw", "name": "Ann"})
	require.Equal(t, http.StatusCreated, rec.Code)
	user := body["user"].(map[string]any)
	assert.Equal(t, "a@example.com", user["email"])
	assert.Equal(t, "Ann", user["name"])
	assert.NotContains(t, rec.Body.String(), "password")

	rec, body = s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{"email": "a@example.com", "password": "pw"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already in use", body["error"])
	assert.Equal(t, false, body["ok"])

	rec, body = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "a@example.com", "password": "pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	token := body["token"].(string)

	rec, body = s.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, user["id"], body["user"].(map[string]any)["id"])
}

func TestAuthErrors(t *testing.T) {
	s := newTestServer(t, nil)
	s.signup(t, "b@example.com")

	rec, body := s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{"email": "c@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email and password are required", body["error"])

	rec, _ = s.do(t, http.MethodPost, "/api/auth/signup", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = s.do(t, http.MethodPost, "/api/auth/login", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", body["error"])

	_, wrongPw := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "b@example.com", "password": "nope"})
	rec, unknown := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "z@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, wrongPw, unknown)

	rec, _ = s.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPreferencesFlow(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.signup(t, "p@example.com")

	rec, body := s.do(t, http.MethodGet, "/api/preferences/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])
	assert.Nil(t, body["preferences"])

	rec, body = s.do(t, http.MethodPost, "/api/preferences", token, gin.H{"investorType": " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "investorType is required", body["error"])

	rec, body = s.do(t, http.MethodPost, "/api/preferences", token, gin.H{
		"investorType": "HODLer",
		"assets":       "SOL",
		"contentTypes": []any{"charts", "charts", 3},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	pref := body["preferences"].(map[string]any)
	assert.Equal(t, []any{"SOL"}, pref["assets"])
	assert.Equal(t, []any{"charts", "3"}, pref["contentTypes"])

	rec, body = s.do(t, http.MethodGet, "/api/preferences/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HODLer", body["preferences"].(map[string]any)["investorType"])
}

func TestDashboard(t *testing.T) {
	var gotIDs string
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotIDs = r.URL.Query().Get("ids")
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":65000}}`))
	})
	token := s.signup(t, "d@example.com")
	rec, _ := s.do(t, http.MethodPost, "/api/preferences", token, gin.H{"investorType": "Trader", "assets": []string{"BTC", "XYZ"}, "contentTypes": []string{"charts"}})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := s.do(t, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bitcoin", gotIDs)

	sections := body["sections"].(map[string]any)
	prices := sections["prices"].([]any)
	require.Len(t, prices, 1)
	assert.Equal(t, map[string]any{"symbol": "BTC", "name": "bitcoin", "usd": 65000.0}, prices[0])

	news := sections["news"].([]any)
	require.Len(t, news, 2)
	assert.Equal(t, "Static", news[0].(map[string]any)["source"])

	insight := sections["insight"].(map[string]any)
	assert.Contains(t, insight["text"], "Today's focus: BTC & XYZ.")
	assert.Contains(t, insight["text"], "You asked for charts")
	assert.NotNil(t, sections["meme"])
}

func TestDashboardPriceOutage(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	token := s.signup(t, "o@example.com")

	rec, body := s.do(t, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	prices := body["sections"].(map[string]any)["prices"].([]any)
	require.Len(t, prices, 2)
	for _, p := range prices {
		price := p.(map[string]any)
		assert.Contains(t, price, "usd")
		assert.Nil(t, price["usd"])
	}
}

func TestVotesFlow(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.signup(t, "v@example.com")

	rec, body := s.do(t, http.MethodPost, "/api/votes", token, gin.H{"type": "meme", "itemId": "m1", "value": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	first := body["vote"].(map[string]any)

	rec, body = s.do(t, http.MethodPost, "/api/votes", token, gin.H{"type": "meme", "itemId": "m1", "value": "-1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	second := body["vote"].(map[string]any)
	assert.Equal(t, first["id"], second["id"])
	assert.Equal(t, -1.0, second["value"])

	for _, bad := range []gin.H{
		{"type": "meme", "itemId": "m1", "value": 0},
		{"type": "meme", "itemId": "m1", "value": 2},
		{"type": "meme", "itemId": "m1", "value": "up"},
		{"type": "song", "itemId": "m1", "value": 1},
		{"type": "meme", "value": 1},
	} {
		rec, body = s.do(t, http.MethodPost, "/api/votes", token, bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid vote", body["error"])
	}

	rec, body = s.do(t, http.MethodGet, "/api/votes/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	votes := body["votes"].([]any)
	require.Len(t, votes, 1)
	assert.Equal(t, "m1", votes[0].(map[string]any)["itemId"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, nil)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/preferences/me"},
		{http.MethodPost, "/api/preferences"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodPost, "/api/votes"},
		{http.MethodGet, "/api/votes/me"},
	} {
		rec, body := s.do(t, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
		assert.Equal(t, "Missing token", body["error"])
	}
}

func TestHealthRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	s.signup(t, "h@example.com")

	rec, body := s.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Crypto Advisor API", body["app"])

	rec, body = s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])

	rec, body = s.do(t, http.MethodGet, "/db-test", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, body["userCount"])

	rec, body = s.do(t, http.MethodPost, "/echo", "", gin.H{"hello": "world"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"hello": "world"}, body["data"])

	rec, _ = s.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "crypto_advisor_http_requests_total")
}

func TestAuthRateLimit(t *testing.T) {
	s := newTestServer(t, nil)
	logger, _ := test.NewNullLogger()
	s.router = NewRouter(RouterConfig{BasePath: "/api", AllowAllOrigins: true, AuthPerSecond: 0.001, AuthBurst: 1}, Dependencies{
		Auth:  service.NewAuthService(s.store, auth.NewTokenIssuer("x", time.Hour)),
		Users: s.store,
		Log:   logger,
	})

	rec, _ := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "n@example.com", "password": "pw"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, body := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "n@example.com", "password": "pw"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests", body["error"])
}
