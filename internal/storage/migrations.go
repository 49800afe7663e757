package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// 부팅마다 순서대로 실행, 모든 문장은 재실행해도 안전
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		"id" TEXT PRIMARY KEY,
		"email" TEXT NOT NULL UNIQUE,
		"name" TEXT,
		"password_hash" TEXT NOT NULL,
		"created_at" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS preferences (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL UNIQUE,
		"investor_type" TEXT NOT NULL,
		"assets" TEXT NOT NULL DEFAULT '[]',
		"content_types" TEXT NOT NULL DEFAULT '[]',
		"created_at" TEXT NOT NULL,
		"updated_at" TEXT NOT NULL,
		FOREIGN KEY(user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS votes (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL,
		"item_type" TEXT NOT NULL,
		"item_id" TEXT NOT NULL,
		"value" INTEGER NOT NULL CHECK ("value" IN (1, -1)),
		"created_at" TEXT NOT NULL,
		"updated_at" TEXT NOT NULL,
		FOREIGN KEY(user_id) REFERENCES users(id)
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS votes_user_item_idx ON votes(user_id, item_type, item_id)`,
	`CREATE INDEX IF NOT EXISTS votes_user_created_idx ON votes(user_id, created_at)`,
}

// 테이블 및 인덱스 생성
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
