package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"notes-calendar/internal/converter"
	"notes-calendar/internal/model"
	"notes-calendar/internal/query"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

// WithToken добавляет токен сессии в исходящие метаданные
func WithToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

// Notebook хранит последний успешно загруженный набор заметок пользователя
// и состояние фильтров. Представления строятся локально из этого набора.
type Notebook struct {
	notes notesv1.NotesServiceClient
	loc   *time.Location
	log   logrus.FieldLogger

	mu        sync.RWMutex
	snapshot  []model.Note
	filter    query.Filter
	fetchedAt time.Time
	lastErr   error
}

// NewNotebook создает Notebook поверх соединения cc. loc задает локальный пояс пользователя.
func NewNotebook(cc grpc.ClientConnInterface, loc *time.Location, log logrus.FieldLogger) *Notebook {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Notebook{
		notes:  notesv1.NewNotesServiceClient(cc),
		loc:    loc,
		log:    log.WithField("component", "notebook"),
		filter: query.DefaultFilter(),
	}
}

// Location пояс, в котором строятся представления
func (n *Notebook) Location() *time.Location {
	return n.loc
}

// timezone имя пояса для запросов, для time.Local сервер берет свой пояс по умолчанию
func (n *Notebook) timezone() string {
	if n.loc == time.Local {
		return ""
	}
	return n.loc.String()
}

// Refresh перечитывает полный набор заметок. При ошибке прежний набор
// сохраняется, а ошибка запоминается для отображения.
func (n *Notebook) Refresh(ctx context.Context) error {
	resp, err := n.notes.ListNotes(ctx, &notesv1.ListNotesRequest{
		DateFilter: query.DateAll.String(),
		Timezone:   n.timezone(),
	})

	n.mu.Lock()
	defer n.mu.Unlock()

	if err != nil {
		n.lastErr = err
		n.log.WithError(err).Warn("refresh failed, keeping previous snapshot")
		return err
	}

	n.snapshot = converter.APIsToModels(resp.Notes)
	n.fetchedAt = time.Now()
	n.lastErr = nil
	return nil
}

// Err последняя ошибка загрузки, nil после успешного Refresh
func (n *Notebook) Err() error {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.lastErr
}

// FetchedAt время последней успешной загрузки
func (n *Notebook) FetchedAt() time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.fetchedAt
}

// Snapshot возвращает копию текущего набора заметок
func (n *Notebook) Snapshot() []model.Note {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]model.Note, len(n.snapshot))
	copy(out, n.snapshot)
	return out
}

// Filter текущее состояние фильтров
func (n *Notebook) Filter() query.Filter {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.filter
}

// SetFilter меняет состояние фильтров. Недопустимый фильтр отклоняется.
func (n *Notebook) SetFilter(f query.Filter) error {
	if err := f.Validate(); err != nil {
		return err
	}
	n.mu.Lock()
	n.filter = f
	n.mu.Unlock()
	return nil
}

// View строит список для отображения на момент now
func (n *Notebook) View(now time.Time) []model.Note {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return query.Apply(n.snapshot, n.filter, now.In(n.loc))
}

// Calendar строит сетку месяца по текущему набору
func (n *Notebook) Calendar(year int, month time.Month, now time.Time) query.Calendar {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return query.BuildCalendar(n.snapshot, year, month, now.In(n.loc))
}

// Create создает заметку и перечитывает набор
func (n *Notebook) Create(ctx context.Context, title, content, noteDate string) (model.Note, error) {
	resp, err := n.notes.CreateNote(ctx, &notesv1.CreateNoteRequest{
		Title:    title,
		Content:  content,
		NoteDate: noteDate,
		Timezone: n.timezone(),
	})
	if err != nil {
		return model.Note{}, err
	}
	n.refreshAfterMutation(ctx)
	return converter.APIToModel(resp.Note), nil
}

// Update заменяет title и content заметки и перечитывает набор
func (n *Notebook) Update(ctx context.Context, id, title, content string) (model.Note, error) {
	resp, err := n.notes.UpdateNote(ctx, &notesv1.UpdateNoteRequest{
		Id:       id,
		Title:    title,
		Content:  content,
		Timezone: n.timezone(),
	})
	if err != nil {
		return model.Note{}, err
	}
	n.refreshAfterMutation(ctx)
	return converter.APIToModel(resp.Note), nil
}

// Patch обновляет только переданные поля, nil поле берется из текущей
// версии заметки на сервере
func (n *Notebook) Patch(ctx context.Context, id string, title, content *string) (model.Note, error) {
	if title == nil && content == nil {
		return model.Note{}, errors.New("nothing to update: set title or content")
	}
	if title == nil || content == nil {
		resp, err := n.notes.GetNote(ctx, &notesv1.GetNoteRequest{Id: id, Timezone: n.timezone()})
		if err != nil {
			return model.Note{}, err
		}
		if title == nil {
			title = &resp.Note.Title
		}
		if content == nil {
			content = &resp.Note.Content
		}
	}
	return n.Update(ctx, id, *title, *content)
}

// Delete удаляет заметку и перечитывает набор
func (n *Notebook) Delete(ctx context.Context, id string) error {
	if _, err := n.notes.DeleteNote(ctx, &notesv1.DeleteNoteRequest{Id: id}); err != nil {
		return err
	}
	n.refreshAfterMutation(ctx)
	return nil
}

// Ошибка перечитывания после успешной мутации не является ошибкой мутации
func (n *Notebook) refreshAfterMutation(ctx context.Context) {
	_ = n.Refresh(ctx)
}

// Watch подписывается на изменения и перечитывает набор на каждое событие
// подписки или изменения. onChange вызывается после каждого перечитывания.
// Возвращает nil при отмене ctx.
func (n *Notebook) Watch(ctx context.Context, onChange func(ev *notesv1.ChangeEvent)) error {
	stream, err := n.notes.SubscribeToChanges(ctx, &notesv1.SubscribeToChangesRequest{})
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	for {
		ev, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil || status.Code(err) == codes.Canceled {
				return nil
			}
			return fmt.Errorf("receive change: %w", err)
		}

		if ev.Type == notesv1.ChangeType_CHANGE_TYPE_HEARTBEAT {
			continue
		}

		n.log.WithFields(logrus.Fields{"type": ev.Type, "note_id": ev.NoteId}).Debug("change received")
		// Ошибка уже запомнена в lastErr, подписка продолжается
		_ = n.Refresh(ctx)
		if onChange != nil {
			onChange(ev)
		}
	}
}
