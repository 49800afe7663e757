package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// 요청이 없는 클라이언트의 limiter 보관 시간
const limiterTTL = time.Hour

// 클라이언트 IP 별 토큰 버킷 요청 제한
func RateLimitByIP(perSecond float64, burst int, log logrus.FieldLogger) gin.HandlerFunc {
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			return rate.NewLimiter(rate.Limit(perSecond), burst), limiterTTL
		},
		func(c *gin.Context) {
			log.WithFields(logrus.Fields{
				"client_ip": c.ClientIP(),
				"path":      c.Request.URL.Path,
			}).Warn("RateLimitByIP(): rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "Too many requests"})
		},
	)
}
