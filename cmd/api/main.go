// @title          Crypto Advisor API
// @version        1.0
// @description    Personalised crypto dashboard: prices, news, daily insight, memes and votes.
// @BasePath       /api
// @securityDefinitions.apikey BearerAuth
// @in             header
// @name           Authorization

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CryptoAdvisor/docs"
	"CryptoAdvisor/internal/auth"
	"CryptoAdvisor/internal/config"
	"CryptoAdvisor/internal/dashboard"
	"CryptoAdvisor/internal/handler"
	"CryptoAdvisor/internal/logging"
	"CryptoAdvisor/internal/market"
	"CryptoAdvisor/internal/service"
	"CryptoAdvisor/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("main(): %v", err)
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)
	for _, w := range cfg.Warnings() {
		log.Warnf("config.Load(): %s", w)
	}
	gin.SetMode(gin.ReleaseMode)

	// DB 연결 및 스키마 적용
	bootCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	store, err := storage.Open(bootCtx, cfg.Database.URL)
	cancel()
	if err != nil {
		log.Fatalf("main(): failed to open database: %v", err)
	}
	defer store.Close()

	authSvc := service.NewAuthService(store, auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL))
	prefSvc := service.NewPreferenceService(store)
	voteSvc := service.NewVoteService(store)

	// 뉴스 토큰이 없으면 news 는 nil 인터페이스로 남겨 고정 목록을 사용
	var news dashboard.NewsProvider
	if cfg.IsNewsConfigured() {
		news = market.NewCryptoPanic(cfg.Provider.CryptoPanicBaseURL, cfg.Provider.CryptoPanicToken, cfg.Provider.Timeout)
	}
	prices := market.NewCoinGecko(cfg.Provider.CoinGeckoBaseURL, cfg.Provider.Timeout)
	agg := dashboard.NewAggregator(prefSvc, prices, news, cfg.Provider.Timeout, log)

	docs.SwaggerInfo.BasePath = cfg.Server.BasePath
	router := handler.NewRouter(handler.RouterConfig{
		BasePath:        cfg.Server.BasePath,
		AllowAllOrigins: cfg.AllowAllOrigins(),
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		AuthPerSecond:   cfg.RateLimit.AuthPerSecond,
		AuthBurst:       cfg.RateLimit.AuthBurst,
	}, handler.Dependencies{
		Auth:        authSvc,
		Preferences: prefSvc,
		Votes:       voteSvc,
		Dashboard:   agg,
		Users:       store,
		Log:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Server.Port, "base_path": cfg.Server.BasePath}).Info("main(): HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main(): ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("main(): shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("main(): server shutdown error: %v", err)
	}
	log.Info("main(): server stopped")
}
