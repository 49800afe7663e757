// Package service 회원, 설정, 투표 처리
package service

import (
	"context"
	"errors"
	"strings"

	"CryptoAdvisor/internal/apperr"
	"CryptoAdvisor/internal/auth"
	"CryptoAdvisor/internal/models"
	"CryptoAdvisor/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string, name *string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
}

type AuthService struct {
	users  UserStore
	tokens *auth.TokenIssuer
}

func NewAuthService(users UserStore, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// 회원가입 / 로그인 응답
type Session struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

var errCredentialsRequired = apperr.Validation("email and password are required")

func (s *AuthService) Signup(ctx context.Context, email, password string, name *string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, errCredentialsRequired
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			name = nil
		} else {
			name = &trimmed
		}
	}

	// password 해싱
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, apperr.Internal("Signup failed", err)
	}

	// DB에 사용자 생성
	user, err := s.users.CreateUser(ctx, email, string(hash), name)
	if errors.Is(err, storage.ErrEmailExists) {
		return Session{}, apperr.Conflict("Email already in use")
	}
	if err != nil {
		return Session{}, apperr.Internal("Signup failed", err)
	}
	return s.session(user, "Signup failed")
}

// 없는 email 과 틀린 비밀번호는 같은 에러로 응답
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, errCredentialsRequired
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return Session{}, apperr.Auth("Invalid credentials")
	}
	if err != nil {
		return Session{}, apperr.Internal("Login failed", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, apperr.Auth("Invalid credentials")
	}
	return s.session(user, "Login failed")
}

// Bearer 토큰 검증
func (s *AuthService) Verify(token string) (*auth.Claims, error) {
	claims, err := s.tokens.Validate(token)
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, auth.ErrTokenMissing):
		return nil, &apperr.Error{Kind: apperr.KindAuth, Message: "Missing token", Err: err}
	case errors.Is(err, auth.ErrTokenExpired):
		return nil, &apperr.Error{Kind: apperr.KindAuth, Message: "Token has expired", Err: err}
	default:
		return nil, &apperr.Error{Kind: apperr.KindAuth, Message: "Invalid token", Err: err}
	}
}

func (s *AuthService) Me(ctx context.Context, userID string) (models.PublicUser, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return models.PublicUser{}, apperr.Auth("User not found")
	}
	if err != nil {
		return models.PublicUser{}, apperr.Internal("Failed to fetch user", err)
	}
	return user.Public(), nil
}

func (s *AuthService) session(user models.User, failure string) (Session, error) {
	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return Session{}, apperr.Internal(failure, err)
	}
	return Session{Token: token, User: user.Public()}, nil
}
