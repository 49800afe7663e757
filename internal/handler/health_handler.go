/**
* Name:        health_handler.go
* Description: 서비스 상태 확인용 핸들러 (/, /health, /db-test, /echo)
 */
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserCounter interface {
	CountUsers(ctx context.Context) (int, error)
}

type HealthHandler struct {
	users UserCounter
}

func NewHealthHandler(users UserCounter) *HealthHandler {
	return &HealthHandler{users: users}
}

type BannerResponse struct {
	App    string   `json:"app" example:"Crypto Advisor API"`
	Status string   `json:"status" example:"ok"`
	Routes []string `json:"routes"`
}

type DBTestResponse struct {
	OK        bool `json:"ok" example:"true"`
	UserCount int  `json:"userCount" example:"3"`
}

type EchoResponse struct {
	Message string `json:"message" example:"I got your data!"`
	Data    any    `json:"data"`
}

// 서비스 라우트 목록
func (h *HealthHandler) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, BannerResponse{
		App:    "Crypto Advisor API",
		Status: "ok",
		Routes: []string{"/health", "/db-test", "POST /echo", "/metrics", "/swagger/index.html"},
	})
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// DB 응답 확인 (사용자 수 포함)
func (h *HealthHandler) DBTest(c *gin.Context) {
	count, err := h.users.CountUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Database connection failed")
		return
	}
	c.JSON(http.StatusOK, DBTestResponse{OK: true, UserCount: count})
}

func (h *HealthHandler) Echo(c *gin.Context) {
	var body any
	if !bindJSON(c, &body) {
		return
	}
	c.JSON(http.StatusOK, EchoResponse{Message: "I got your data!", Data: body})
}
