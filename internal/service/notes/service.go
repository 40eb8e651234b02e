package notes

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"notes-calendar/internal/model"
	"notes-calendar/internal/query"
	"notes-calendar/internal/repository"
	svc "notes-calendar/internal/service"
)

var _ svc.NoteService = (*service)(nil)

type service struct {
	noteRepository repository.NoteRepository
	events         *EventService
	clock          query.Clock
	log            logrus.FieldLogger
}

// NewNoteService создает новый экземпляр сервиса для работы с заметками
func NewNoteService(noteRepository repository.NoteRepository, events *EventService, clock query.Clock, log logrus.FieldLogger) svc.NoteService {
	if events == nil {
		events = NewEventService()
	}
	if clock == nil {
		clock = query.SystemClock()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &service{
		noteRepository: noteRepository,
		events:         events,
		clock:          clock,
		log:            log.WithField("component", "notes"),
	}
}

func requireUser(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id cannot be empty", model.ErrInvalidArgument)
	}
	return nil
}

func requireID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id cannot be empty", model.ErrInvalidArgument)
	}
	return nil
}

// Fetch возвращает полный набор заметок пользователя
func (s *service) Fetch(ctx context.Context, userID string) ([]model.Note, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	notes, err := s.noteRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch notes: %w", err)
	}

	return notes, nil
}

// Get возвращает заметку по её ID
func (s *service) Get(ctx context.Context, userID, id string) (model.Note, error) {
	if err := requireUser(userID); err != nil {
		return model.Note{}, err
	}
	if err := requireID(id); err != nil {
		return model.Note{}, err
	}

	return s.noteRepository.GetByID(ctx, userID, id)
}

// Create создает новую заметку. Title и content сохраняются как есть,
// noteDate приводится к виду YYYY-MM-DD.
func (s *service) Create(ctx context.Context, userID, title, content, noteDate string) (model.Note, error) {
	if err := requireUser(userID); err != nil {
		return model.Note{}, err
	}

	if noteDate != "" {
		d, err := query.ParseDate(noteDate)
		if err != nil {
			return model.Note{}, fmt.Errorf("%w: note date: %v", model.ErrInvalidArgument, err)
		}
		noteDate = d.String()
	}

	now := s.clock.Now()
	note := model.Note{
		UserID:    userID,
		Title:     title,
		Content:   content,
		NoteDate:  noteDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := note.Validate(); err != nil {
		return model.Note{}, err
	}

	// UUID будет сгенерирован в репозитории
	created, err := s.noteRepository.Create(ctx, note)
	if err != nil {
		return model.Note{}, err
	}

	s.publish(model.ChangeCreated, created)
	return created, nil
}

// Update заменяет title и content. CreatedAt и NoteDate не меняются,
// поэтому редактирование не переносит заметку в другой день.
func (s *service) Update(ctx context.Context, userID, id, title, content string) (model.Note, error) {
	if err := requireUser(userID); err != nil {
		return model.Note{}, err
	}
	if err := requireID(id); err != nil {
		return model.Note{}, err
	}

	existing, err := s.noteRepository.GetByID(ctx, userID, id)
	if err != nil {
		return model.Note{}, err
	}

	existing.Title = title
	existing.Content = content
	if err := existing.Validate(); err != nil {
		return model.Note{}, err
	}
	existing.UpdatedAt = s.clock.Now()

	updated, err := s.noteRepository.Update(ctx, existing)
	if err != nil {
		return model.Note{}, err
	}

	s.publish(model.ChangeUpdated, updated)
	return updated, nil
}

// Delete удаляет заметку по ID
func (s *service) Delete(ctx context.Context, userID, id string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}

	if err := s.noteRepository.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.publish(model.ChangeDeleted, model.Note{ID: id, UserID: userID})
	return nil
}

// Query применяет фильтры к свежему набору заметок
func (s *service) Query(ctx context.Context, userID string, filter query.Filter, now time.Time) ([]model.Note, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	notes, err := s.Fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	return query.Apply(notes, filter, now), nil
}

// Calendar строит сетку месяца по свежему набору заметок
func (s *service) Calendar(ctx context.Context, userID string, year int, month time.Month, now time.Time) (query.Calendar, error) {
	if month < time.January || month > time.December {
		return query.Calendar{}, fmt.Errorf("%w: month must be between 1 and 12", model.ErrInvalidArgument)
	}

	notes, err := s.Fetch(ctx, userID)
	if err != nil {
		return query.Calendar{}, err
	}

	return query.BuildCalendar(notes, year, month, now), nil
}

// Subscribe подписывает на изменения заметок пользователя
func (s *service) Subscribe(userID string) (<-chan model.ChangeEvent, func()) {
	ch := s.events.Subscribe(userID)
	return ch, func() { s.events.Unsubscribe(userID, ch) }
}

func (s *service) publish(kind model.ChangeKind, note model.Note) {
	s.log.WithFields(logrus.Fields{
		"event":   kind,
		"user_id": note.UserID,
		"note_id": note.ID,
	}).Debug("note changed")

	s.events.Publish(model.ChangeEvent{
		Kind:   kind,
		UserID: note.UserID,
		NoteID: note.ID,
		At:     s.clock.Now(),
	})
}
