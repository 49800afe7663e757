/**
* Name:        auth_handler.go
* Description: 회원가입, 로그인, 토큰 확인 핸들러
 */
package handler

import (
	"net/http"

	"CryptoAdvisor/internal/middleware"
	"CryptoAdvisor/internal/service"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Email    string  `json:"email" example:"satoshi@example.com"`
	Password string  `json:"password" example:"password123"`
	Name     *string `json:"name" example:"Satoshi"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"satoshi@example.com"`
	Password string `json:"password" example:"password123"`
}

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup godoc
// @Summary      회원가입 (Signup)
// @Description  새 계정을 만들고 JWT 토큰을 발급합니다. /auth/register 도 같은 동작입니다.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.SignupRequest true "회원가입 요청 정보"
// @Success      201 {object} service.Session
// @Failure      400 {object} handler.ErrorResponse "email 또는 password 누락"
// @Failure      409 {object} handler.ErrorResponse "이미 사용 중인 email"
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, err, "Signup failed")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  email 과 비밀번호로 로그인하고 JWT 토큰을 발급받습니다.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "로그인 요청 정보"
// @Success      200 {object} service.Session
// @Failure      400 {object} handler.ErrorResponse "잘못된 요청"
// @Failure      401 {object} handler.ErrorResponse "인증 실패 (자격 증명 오류)"
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, session)
}

// Me godoc
// @Summary      토큰 확인 (Me)
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.UserResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, UserResponse{OK: true, User: user})
}
