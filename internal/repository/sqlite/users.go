package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"notes-calendar/internal/model"
	"notes-calendar/internal/repository"
)

// CreateUser сохраняет пользователя, повторный email дает ErrUserExists
func (s *Store) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		user.ID, user.Email, user.PasswordHash, formatTime(user.CreatedAt),
	)
	if isConstraintViolation(err) {
		return model.User{}, repository.ErrUserExists
	}
	if err != nil {
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}

	user.CreatedAt, _ = parseTime(formatTime(user.CreatedAt))
	return user, nil
}

// GetUserByEmail ищет пользователя по email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return s.getUser(ctx, "email", email)
}

// GetUserByID ищет пользователя по ID
func (s *Store) GetUserByID(ctx context.Context, id string) (model.User, error) {
	return s.getUser(ctx, "id", id)
}

func (s *Store) getUser(ctx context.Context, column, value string) (model.User, error) {
	var (
		user      model.User
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE "+column+" = ?", value,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	if user.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// CreateSession сохраняет сессию
func (s *Store) CreateSession(ctx context.Context, session model.Session) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)",
		session.Token, session.UserID, formatTime(session.CreatedAt), formatTime(session.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetSession возвращает сессию по токену
func (s *Store) GetSession(ctx context.Context, token string) (model.Session, error) {
	var (
		session              model.Session
		createdAt, expiresAt string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = ?", token,
	).Scan(&session.Token, &session.UserID, &createdAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Session{}, repository.ErrSessionNotFound
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("get session: %w", err)
	}
	if session.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Session{}, err
	}
	if session.ExpiresAt, err = parseTime(expiresAt); err != nil {
		return model.Session{}, err
	}
	return session, nil
}

// DeleteSession удаляет сессию, отсутствие сессии не ошибка
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
