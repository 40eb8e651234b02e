package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"notes-calendar/internal/model"
	"notes-calendar/internal/repository"

	"github.com/google/uuid"
)

var _ repository.Store = (*repo)(nil)

type repo struct {
	mu       sync.RWMutex
	notes    map[string]model.Note
	users    map[string]model.User
	emails   map[string]string // email -> user ID
	sessions map[string]model.Session
}

// NewRepository создает новый экземпляр in-memory хранилища на основе map
func NewRepository() repository.Store {
	return &repo{
		notes:    make(map[string]model.Note),
		users:    make(map[string]model.User),
		emails:   make(map[string]string),
		sessions: make(map[string]model.Session),
	}
}

// Create создает новую заметку и возвращает созданную заметку с ID
func (r *repo) Create(ctx context.Context, note model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Генерируем UUID если не передан
	if note.ID == "" {
		note.ID = uuid.New().String()
	}

	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = note.CreatedAt
	}

	r.notes[note.ID] = note

	return note, nil
}

// GetByID возвращает заметку пользователя по её ID
func (r *repo) GetByID(ctx context.Context, userID, id string) (model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, exists := r.notes[id]
	if !exists || note.UserID != userID {
		return model.Note{}, repository.ErrNoteNotFound
	}

	return note, nil
}

// ListByUser возвращает заметки пользователя, сначала недавно измененные
func (r *repo) ListByUser(ctx context.Context, userID string) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]model.Note, 0)
	for _, note := range r.notes {
		if note.UserID == userID {
			notes = append(notes, note)
		}
	}

	// порядок map случаен, фиксируем его
	slices.SortFunc(notes, func(a, b model.Note) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return notes, nil
}

// Update обновляет существующую заметку и возвращает обновленную заметку.
// CreatedAt и NoteDate сохраняются из хранилища.
func (r *repo) Update(ctx context.Context, note model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.notes[note.ID]
	if !exists || existing.UserID != note.UserID {
		return model.Note{}, repository.ErrNoteNotFound
	}

	existing.Title = note.Title
	existing.Content = note.Content
	existing.UpdatedAt = note.UpdatedAt
	if existing.UpdatedAt.IsZero() {
		existing.UpdatedAt = time.Now()
	}

	r.notes[note.ID] = existing

	return existing, nil
}

// Delete удаляет заметку пользователя по ID
func (r *repo) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, exists := r.notes[id]
	if !exists || note.UserID != userID {
		return repository.ErrNoteNotFound
	}

	delete(r.notes, id)

	return nil
}

// CreateUser сохраняет пользователя, email должен быть уникальным
func (r *repo) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.emails[user.Email]; exists {
		return model.User{}, repository.ErrUserExists
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	r.users[user.ID] = user
	r.emails[user.Email] = user.ID

	return user, nil
}

// GetUserByEmail ищет пользователя по email
func (r *repo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.emails[email]
	if !exists {
		return model.User{}, repository.ErrUserNotFound
	}
	return r.users[id], nil
}

// GetUserByID ищет пользователя по ID
func (r *repo) GetUserByID(ctx context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return model.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

// CreateSession сохраняет сессию
func (r *repo) CreateSession(ctx context.Context, session model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.Token] = session
	return nil
}

// GetSession возвращает сессию по токену
func (r *repo) GetSession(ctx context.Context, token string) (model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[token]
	if !exists {
		return model.Session{}, repository.ErrSessionNotFound
	}
	return session, nil
}

// DeleteSession удаляет сессию, отсутствие сессии не ошибка
func (r *repo) DeleteSession(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}

// Close ничего не делает для in-memory хранилища
func (r *repo) Close() error {
	return nil
}
