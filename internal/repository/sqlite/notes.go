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

const noteColumns = "id, user_id, title, content, note_date, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (model.Note, error) {
	var (
		note                 model.Note
		noteDate             sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &noteDate, &createdAt, &updatedAt); err != nil {
		return model.Note{}, err
	}

	var err error
	if note.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Note{}, err
	}
	if note.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Note{}, err
	}
	note.NoteDate = noteDate.String

	return note, nil
}

// Create сохраняет новую заметку
func (s *Store) Create(ctx context.Context, note model.Note) (model.Note, error) {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = note.CreatedAt
	}

	noteDate := sql.NullString{String: note.NoteDate, Valid: note.NoteDate != ""}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO notes ("+noteColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		note.ID, note.UserID, note.Title, note.Content, noteDate,
		formatTime(note.CreatedAt), formatTime(note.UpdatedAt),
	)
	if err != nil {
		return model.Note{}, fmt.Errorf("insert note: %w", err)
	}

	return s.GetByID(ctx, note.UserID, note.ID)
}

// GetByID возвращает заметку пользователя
func (s *Store) GetByID(ctx context.Context, userID, id string) (model.Note, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+noteColumns+" FROM notes WHERE id = ? AND user_id = ?", id, userID)

	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Note{}, repository.ErrNoteNotFound
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

// ListByUser возвращает заметки пользователя, сначала недавно измененные
func (s *Store) ListByUser(ctx context.Context, userID string) ([]model.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+noteColumns+" FROM notes WHERE user_id = ? ORDER BY updated_at DESC, id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

// Update обновляет title, content и updated_at. created_at и note_date не меняются.
func (s *Store) Update(ctx context.Context, note model.Note) (model.Note, error) {
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ? AND user_id = ?",
		note.Title, note.Content, formatTime(note.UpdatedAt), note.ID, note.UserID,
	)
	if err != nil {
		return model.Note{}, fmt.Errorf("update note: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Note{}, repository.ErrNoteNotFound
	}

	return s.GetByID(ctx, note.UserID, note.ID)
}

// Delete удаляет заметку пользователя
func (s *Store) Delete(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNoteNotFound
	}
	return nil
}
