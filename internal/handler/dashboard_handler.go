/**
* Name:        dashboard_handler.go
* Description: 사용자 맞춤 대시보드 (시세, 뉴스, 인사이트, 밈) 핸들러
 */
package handler

import (
	"net/http"

	"CryptoAdvisor/internal/dashboard"
	"CryptoAdvisor/internal/middleware"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	aggregator *dashboard.Aggregator
}

func NewDashboardHandler(aggregator *dashboard.Aggregator) *DashboardHandler {
	return &DashboardHandler{aggregator: aggregator}
}

// Get godoc
// @Summary      대시보드
// @Description  시세, 뉴스, 인사이트, 밈을 한 번에 반환합니다. 외부 API 실패 시 대체 데이터가 채워집니다.
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.DashboardResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	sections, err := h.aggregator.Build(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, DashboardResponse{OK: true, Sections: sections})
}
