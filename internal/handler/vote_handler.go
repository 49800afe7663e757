/**
* Name:        vote_handler.go
* Description: 대시보드 항목 투표 저장 및 조회 핸들러
 */
package handler

import (
	"net/http"

	"CryptoAdvisor/internal/middleware"
	"CryptoAdvisor/internal/service"

	"github.com/gin-gonic/gin"
)

type VoteRequest struct {
	Type   string `json:"type" example:"news" enums:"news,price,insight,meme"`
	ItemID string `json:"itemId" example:"n1"`
	Value  int    `json:"value" example:"1" enums:"1,-1"`
}

type VoteHandler struct {
	votes *service.VoteService
}

func NewVoteHandler(votes *service.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// Upsert godoc
// @Summary      투표 (Vote)
// @Description  같은 항목에 다시 투표하면 값이 바뀝니다. 생성과 수정 모두 201 입니다.
// @Tags         Votes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.VoteRequest true "투표 정보"
// @Success      201 {object} handler.VoteResponse
// @Failure      400 {object} handler.ErrorResponse "Invalid vote"
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /votes [post]
func (h *VoteHandler) Upsert(c *gin.Context) {
	var in service.VoteInput
	if !bindJSON(c, &in) {
		return
	}

	vote, err := h.votes.Upsert(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, err, "Failed to save vote")
		return
	}
	c.JSON(http.StatusCreated, VoteResponse{OK: true, Vote: vote})
}

// ListMine godoc
// @Summary      내 투표 목록
// @Tags         Votes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.VotesResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /votes/me [get]
func (h *VoteHandler) ListMine(c *gin.Context) {
	votes, err := h.votes.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to fetch votes")
		return
	}
	c.JSON(http.StatusOK, VotesResponse{OK: true, Votes: votes})
}
