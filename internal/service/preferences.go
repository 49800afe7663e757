package service

import (
	"context"
	"errors"
	"strings"

	"CryptoAdvisor/internal/apperr"
	"CryptoAdvisor/internal/models"
	"CryptoAdvisor/internal/storage"
)

type PreferenceStore interface {
	GetPreference(ctx context.Context, userID string) (models.Preference, error)
	UpsertPreference(ctx context.Context, userID, investorType string, assets, contentTypes []string) (models.Preference, error)
}

// 온보딩 폼 바디
// 문자열, 배열, 누락이 섞여 들어오므로 any 로 받음
type PreferenceInput struct {
	InvestorType any `json:"investorType"`
	Assets       any `json:"assets"`
	ContentTypes any `json:"contentTypes"`
}

type PreferenceService struct {
	store PreferenceStore
}

func NewPreferenceService(store PreferenceStore) *PreferenceService {
	return &PreferenceService{store: store}
}

// 온보딩 전이면 nil
func (s *PreferenceService) Get(ctx context.Context, userID string) (*models.Preference, error) {
	pref, err := s.store.GetPreference(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal("Failed to fetch preferences", err)
	}
	return &pref, nil
}

// 설정 전체 교체
func (s *PreferenceService) Upsert(ctx context.Context, userID string, in PreferenceInput) (models.Preference, error) {
	investorType := strings.TrimSpace(stringify(in.InvestorType))
	if investorType == "" {
		return models.Preference{}, apperr.Validation("investorType is required")
	}

	pref, err := s.store.UpsertPreference(ctx, userID, investorType, stringList(in.Assets), stringList(in.ContentTypes))
	if err != nil {
		return models.Preference{}, apperr.Internal("Failed to save preferences", err)
	}
	return pref, nil
}
