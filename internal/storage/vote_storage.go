package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"CryptoAdvisor/internal/models"

	"github.com/google/uuid"
)

const voteColumns = `id, user_id, item_type, item_id, value, created_at, updated_at`

// 투표 생성 또는 값 변경
// (user_id, item_type, item_id) 유니크 인덱스로 동시 요청에도 한 건만 유지
func (s *Store) UpsertVote(ctx context.Context, userID, itemType, itemID string, value int) (models.Vote, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Vote{}, fmt.Errorf("begin vote tx: %w", err)
	}
	defer tx.Rollback()

	now := formatTime(s.now())
	_, err = tx.ExecContext(ctx,
		`INSERT INTO votes(`+voteColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, item_type, item_id) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		uuid.NewString(), userID, itemType, itemID, value, now, now)
	if err != nil {
		return models.Vote{}, fmt.Errorf("upsert vote: %w", err)
	}

	row := tx.QueryRowContext(ctx,
		`SELECT `+voteColumns+` FROM votes WHERE user_id = ? AND item_type = ? AND item_id = ?`,
		userID, itemType, itemID)
	vote, err := scanVote(row)
	if err != nil {
		return models.Vote{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Vote{}, fmt.Errorf("commit vote tx: %w", err)
	}
	return vote, nil
}

// 사용자 투표 목록, 최신순
func (s *Store) ListVotes(ctx context.Context, userID string) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+voteColumns+` FROM votes WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("select votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		vote, err := scanVote(rows)
		if err != nil {
			return nil, err
		}
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes: %w", err)
	}
	return votes, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVote(row scanner) (models.Vote, error) {
	var (
		vote                 models.Vote
		createdAt, updatedAt string
	)
	err := row.Scan(&vote.ID, &vote.UserID, &vote.Type, &vote.ItemID, &vote.Value, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vote{}, ErrNotFound
		}
		return models.Vote{}, fmt.Errorf("scan vote: %w", err)
	}
	if vote.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Vote{}, err
	}
	if vote.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return models.Vote{}, err
	}
	return vote, nil
}
