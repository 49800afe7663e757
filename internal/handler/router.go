/**
* Name:        router.go
* Description: 라우터 구성 (미들웨어, API 그룹, 문서, 메트릭)
 */
package handler

import (
	"CryptoAdvisor/internal/dashboard"
	"CryptoAdvisor/internal/metrics"
	"CryptoAdvisor/internal/middleware"
	"CryptoAdvisor/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterConfig struct {
	BasePath        string
	AllowAllOrigins bool
	AllowedOrigins  []string
	AuthPerSecond   float64
	AuthBurst       int
}

type Dependencies struct {
	Auth        *service.AuthService
	Preferences *service.PreferenceService
	Votes       *service.VoteService
	Dashboard   *dashboard.Aggregator
	Users       UserCounter
	Log         logrus.FieldLogger
}

func NewRouter(cfg RouterConfig, deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(deps.Log), middleware.Metrics())
	router.Use(cors.New(corsConfig(cfg)))

	health := NewHealthHandler(deps.Users)
	router.GET("/", health.Banner)
	router.GET("/health", health.Health)
	router.GET("/db-test", health.DBTest)
	router.POST("/echo", health.Echo)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := NewAuthHandler(deps.Auth)
	prefs := NewPreferencesHandler(deps.Preferences)
	dash := NewDashboardHandler(deps.Dashboard)
	votes := NewVoteHandler(deps.Votes)
	requireAuth := middleware.Auth(deps.Auth)

	api := router.Group(cfg.BasePath)
	{
		authGroup := api.Group("/auth")
		limited := authGroup.Group("", middleware.RateLimitByIP(cfg.AuthPerSecond, cfg.AuthBurst, deps.Log))
		limited.POST("/signup", authHandler.Signup)
		limited.POST("/register", authHandler.Signup)
		limited.POST("/login", authHandler.Login)
		authGroup.GET("/me", requireAuth, authHandler.Me)

		api.GET("/preferences/ping", health.Health)
		api.GET("/preferences/me", requireAuth, prefs.GetMine)
		api.POST("/preferences", requireAuth, prefs.Upsert)

		api.GET("/dashboard", requireAuth, dash.Get)

		api.POST("/votes", requireAuth, votes.Upsert)
		api.GET("/votes/me", requireAuth, votes.ListMine)
	}
	return router
}

func corsConfig(cfg RouterConfig) cors.Config {
	config := cors.DefaultConfig()
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	if cfg.AllowAllOrigins {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = cfg.AllowedOrigins
	}
	return config
}
