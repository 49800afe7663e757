package middleware

import (
	"net/http"
	"strings"

	"CryptoAdvisor/internal/apperr"
	"CryptoAdvisor/internal/auth"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// "Authorization: Bearer <token>" 검증 후 사용자 id 를 gin 컨텍스트에 저장
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Missing token"})
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": apperr.PublicMessage(err, "Invalid token")})
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// 인증된 사용자 id, Auth 밖에서는 ""
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
