package repository

import (
	"context"
	"errors"

	"notes-calendar/internal/model"
)

var (
	// ErrNoteNotFound возвращается, когда заметка не найдена или принадлежит другому пользователю
	ErrNoteNotFound = errors.New("note not found")
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists возвращается при повторной регистрации email
	ErrUserExists = errors.New("user already exists")
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session not found")
)

// NoteRepository интерфейс для работы с заметками в хранилище.
// Все операции ограничены заметками одного пользователя.
type NoteRepository interface {
	// Create сохраняет новую заметку и возвращает ее с ID
	Create(ctx context.Context, note model.Note) (model.Note, error)

	// GetByID возвращает заметку пользователя по ее ID
	GetByID(ctx context.Context, userID, id string) (model.Note, error)

	// ListByUser возвращает все заметки пользователя, сначала недавно измененные
	ListByUser(ctx context.Context, userID string) ([]model.Note, error)

	// Update обновляет title, content и updated_at существующей заметки
	Update(ctx context.Context, note model.Note) (model.Note, error)

	// Delete удаляет заметку пользователя по ID
	Delete(ctx context.Context, userID, id string) error
}

// UserRepository хранилище учетных записей
type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
}

// SessionRepository хранилище сессий
type SessionRepository interface {
	CreateSession(ctx context.Context, session model.Session) error
	GetSession(ctx context.Context, token string) (model.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// Store набор всех репозиториев одного драйвера
type Store interface {
	NoteRepository
	UserRepository
	SessionRepository
	Close() error
}
