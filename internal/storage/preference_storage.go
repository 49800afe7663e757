package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"CryptoAdvisor/internal/models"

	"github.com/google/uuid"
)

// 사용자 설정 조회, 없으면 ErrNotFound
func (s *Store) GetPreference(ctx context.Context, userID string) (models.Preference, error) {
	var (
		pref                 models.Preference
		assets, contentTypes string
		createdAt, updatedAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, investor_type, assets, content_types, created_at, updated_at
		 FROM preferences WHERE user_id = ?`, userID).
		Scan(&pref.ID, &pref.UserID, &pref.InvestorType, &assets, &contentTypes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Preference{}, ErrNotFound
		}
		return models.Preference{}, fmt.Errorf("select preference: %w", err)
	}

	if err := json.Unmarshal([]byte(assets), &pref.Assets); err != nil {
		return models.Preference{}, fmt.Errorf("decode assets: %w", err)
	}
	if err := json.Unmarshal([]byte(contentTypes), &pref.ContentTypes); err != nil {
		return models.Preference{}, fmt.Errorf("decode content types: %w", err)
	}
	if pref.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Preference{}, err
	}
	if pref.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return models.Preference{}, err
	}
	return pref, nil
}

// 설정 생성 또는 전체 교체
func (s *Store) UpsertPreference(ctx context.Context, userID, investorType string, assets, contentTypes []string) (models.Preference, error) {
	if assets == nil {
		assets = []string{}
	}
	if contentTypes == nil {
		contentTypes = []string{}
	}
	assetsJSON, err := json.Marshal(assets)
	if err != nil {
		return models.Preference{}, fmt.Errorf("encode assets: %w", err)
	}
	contentJSON, err := json.Marshal(contentTypes)
	if err != nil {
		return models.Preference{}, fmt.Errorf("encode content types: %w", err)
	}

	now := formatTime(s.now())
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO preferences(id, user_id, investor_type, assets, content_types, created_at, updated_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
			investor_type = excluded.investor_type,
			assets = excluded.assets,
			content_types = excluded.content_types,
			updated_at = excluded.updated_at`,
		uuid.NewString(), userID, investorType, string(assetsJSON), string(contentJSON), now, now)
	if err != nil {
		return models.Preference{}, fmt.Errorf("upsert preference: %w", err)
	}
	return s.GetPreference(ctx, userID)
}
