package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
)

var (
	ErrEmailExists = errors.New("email already exists")
	ErrNotFound    = errors.New("record not found")
)

// SQLITE_CONSTRAINT_UNIQUE
const sqliteConstraintUnique = 2067

// 시각은 고정 길이 UTC 문자열로 저장 (문자열 정렬 = 시간 정렬)
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// 사용자, 설정, 투표 저장소
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// sqlite 연결 후 스키마 적용
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite 는 동시 쓰기 불가
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return New(db), nil
}

// 이미 열린 DB 사용, 스키마는 건드리지 않음
func New(db *sql.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Store) Close() error { return s.db.Close() }

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique
}

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
