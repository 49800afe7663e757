/**
* Name:        response.go
* Description: 공통 응답 포맷 및 에러 응답 헬퍼
 */
package handler

import (
	"errors"
	"io"
	"net/http"

	"CryptoAdvisor/internal/apperr"
	"CryptoAdvisor/internal/models"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	OK    bool   `json:"ok" example:"false"`
	Error string `json:"error" example:"Invalid vote"`
}

type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

type UserResponse struct {
	OK   bool              `json:"ok" example:"true"`
	User models.PublicUser `json:"user"`
}

type PreferencesResponse struct {
	OK          bool               `json:"ok" example:"true"`
	Preferences *models.Preference `json:"preferences"`
}

type DashboardResponse struct {
	OK       bool                     `json:"ok" example:"true"`
	Sections models.DashboardSections `json:"sections"`
}

type VoteResponse struct {
	OK   bool        `json:"ok" example:"true"`
	Vote models.Vote `json:"vote"`
}

type VotesResponse struct {
	OK    bool          `json:"ok" example:"true"`
	Votes []models.Vote `json:"votes"`
}

// {"ok":false,"error":...} 응답
// 5xx 는 원인을 c.Error 로 남겨 요청 로그에 기록되게 함
func respondError(c *gin.Context, err error, fallback string) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, ErrorResponse{OK: false, Error: apperr.PublicMessage(err, fallback)})
}

// 요청 바디 디코딩, 빈 바디는 {} 로 취급
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{OK: false, Error: "Invalid request body"})
		return false
	}
	return true
}
