/**
* Name:        preferences_handler.go
* Description: 온보딩 설정 조회 및 저장 핸들러
 */
package handler

import (
	"net/http"

	"CryptoAdvisor/internal/middleware"
	"CryptoAdvisor/internal/service"

	"github.com/gin-gonic/gin"
)

// /preferences 요청 바디 (문서용)
// 실제 디코딩은 service.PreferenceInput 으로 해서 느슨한 타입 값을 그대로 받음
type PreferencesRequest struct {
	InvestorType string   `json:"investorType" example:"HODLer"`
	Assets       []string `json:"assets" example:"BTC,ETH"`
	ContentTypes []string `json:"contentTypes" example:"news,charts"`
}

type PreferencesHandler struct {
	prefs *service.PreferenceService
}

func NewPreferencesHandler(prefs *service.PreferenceService) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs}
}

// GetMine godoc
// @Summary      내 선호 설정 조회
// @Description  온보딩 전이면 preferences 가 null 입니다.
// @Tags         Preferences
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.PreferencesResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /preferences/me [get]
func (h *PreferencesHandler) GetMine(c *gin.Context) {
	pref, err := h.prefs.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to fetch preferences")
		return
	}
	c.JSON(http.StatusOK, PreferencesResponse{OK: true, Preferences: pref})
}

// Upsert godoc
// @Summary      선호 설정 저장
// @Description  기존 설정을 통째로 교체합니다.
// @Tags         Preferences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.PreferencesRequest true "온보딩 응답"
// @Success      201 {object} handler.PreferencesResponse
// @Failure      400 {object} handler.ErrorResponse "investorType 누락"
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /preferences [post]
func (h *PreferencesHandler) Upsert(c *gin.Context) {
	var in service.PreferenceInput
	if !bindJSON(c, &in) {
		return
	}

	pref, err := h.prefs.Upsert(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, err, "Failed to save preferences")
		return
	}
	c.JSON(http.StatusCreated, PreferencesResponse{OK: true, Preferences: &pref})
}
