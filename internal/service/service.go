package service

import (
	"context"
	"errors"
	"time"

	"notes-calendar/internal/model"
	"notes-calendar/internal/query"
)

var (
	// ErrInvalidCredentials неверный email или пароль
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthenticated отсутствующая, неизвестная или истекшая сессия
	ErrUnauthenticated = errors.New("unauthenticated")
)

// NoteService интерфейс для бизнес-логики работы с заметками пользователя
type NoteService interface {
	// Fetch возвращает полный набор заметок пользователя
	Fetch(ctx context.Context, userID string) ([]model.Note, error)

	// Get возвращает заметку по её ID
	Get(ctx context.Context, userID, id string) (model.Note, error)

	// Create создает заметку, noteDate (YYYY-MM-DD) опциональна
	Create(ctx context.Context, userID, title, content, noteDate string) (model.Note, error)

	// Update заменяет title и content заметки
	Update(ctx context.Context, userID, id, title, content string) (model.Note, error)

	// Delete удаляет заметку по ID
	Delete(ctx context.Context, userID, id string) error

	// Query возвращает отфильтрованный и отсортированный список на момент now
	Query(ctx context.Context, userID string, filter query.Filter, now time.Time) ([]model.Note, error)

	// Calendar возвращает сетку месяца с количеством заметок по дням
	Calendar(ctx context.Context, userID string, year int, month time.Month, now time.Time) (query.Calendar, error)

	// Subscribe подписывает на изменения заметок пользователя.
	// Возвращенная функция отменяет подписку и закрывает канал.
	Subscribe(userID string) (<-chan model.ChangeEvent, func())
}

// AuthService интерфейс регистрации, входа и проверки сессий
type AuthService interface {
	// SignUp регистрирует пользователя
	SignUp(ctx context.Context, email, password string) (model.User, error)

	// SignIn проверяет пароль и открывает сессию
	SignIn(ctx context.Context, email, password string) (model.Session, error)

	// SignOut закрывает сессию
	SignOut(ctx context.Context, token string) error

	// Authenticate возвращает владельца действующей сессии
	Authenticate(ctx context.Context, token string) (model.User, error)
}
