package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"CryptoAdvisor/internal/models"

	"github.com/google/uuid"
)

// 사용자 생성, 중복 email 이면 ErrEmailExists
func (s *Store) CreateUser(ctx context.Context, email, passwordHash string, name *string) (models.User, error) {
	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users(id, email, name, password_hash, created_at) VALUES(?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.Name, user.PasswordHash, formatTime(user.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.getUser(ctx, `SELECT id, email, name, password_hash, created_at FROM users WHERE email = ?`, email)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.getUser(ctx, `SELECT id, email, name, password_hash, created_at FROM users WHERE id = ?`, id)
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (s *Store) getUser(ctx context.Context, query string, arg any) (models.User, error) {
	var (
		user    models.User
		name    sql.NullString
		created string
	)
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Email, &name, &user.PasswordHash, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("select user: %w", err)
	}
	if name.Valid {
		user.Name = &name.String
	}
	if user.CreatedAt, err = parseTime(created); err != nil {
		return models.User{}, err
	}
	return user, nil
}
