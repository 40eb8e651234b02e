package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"notes-calendar/internal/api/grpc/interceptors"
	"notes-calendar/internal/converter"
	"notes-calendar/internal/query"
	"notes-calendar/internal/repository"
	svc "notes-calendar/internal/service"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

// Options зависимости Handler
type Options struct {
	// Clock источник "сейчас" для фильтров и календаря
	Clock query.Clock
	// DefaultLocation пояс для запросов без timezone
	DefaultLocation *time.Location
	// HeartbeatInterval период heartbeat событий в стриме изменений
	HeartbeatInterval time.Duration
	Logger            logrus.FieldLogger
}

// Handler реализует gRPC сервер для NotesService
type Handler struct {
	notesv1.UnimplementedNotesServiceServer

	noteService svc.NoteService
	clock       query.Clock
	defaultLoc  *time.Location
	heartbeat   time.Duration
	log         logrus.FieldLogger
	serverCtx   context.Context // Контекст сервера для graceful shutdown стримов
}

// NewHandler создает новый экземпляр gRPC хэндлера
func NewHandler(noteService svc.NoteService, opts Options) *Handler {
	if opts.Clock == nil {
		opts.Clock = query.SystemClock()
	}
	if opts.DefaultLocation == nil {
		opts.DefaultLocation = time.Local
	}
	if opts.HeartbeatInterval <= 0 {
		opts.HeartbeatInterval = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &Handler{
		noteService: noteService,
		clock:       opts.Clock,
		defaultLoc:  opts.DefaultLocation,
		heartbeat:   opts.HeartbeatInterval,
		log:         opts.Logger,
		serverCtx:   context.Background(),
	}
}

// SetServerContext устанавливает контекст сервера для graceful shutdown стримов
func (h *Handler) SetServerContext(ctx context.Context) {
	h.serverCtx = ctx
}

// timezoneHeader метаданные с поясом клиента, gateway кладет сюда X-Timezone
const timezoneHeader = "x-timezone"

// requestScope ID пользователя и "сейчас" в поясе запроса.
// Поле timezone запроса важнее метаданных x-timezone.
func (h *Handler) requestScope(ctx context.Context, tz string) (string, time.Time, error) {
	userID, ok := interceptors.UserID(ctx)
	if !ok {
		return "", time.Time{}, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	if tz == "" {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(timezoneHeader); len(values) > 0 {
				tz = values[0]
			}
		}
	}

	loc, err := converter.Location(tz, h.defaultLoc)
	if err != nil {
		return "", time.Time{}, statusWithInfo(codes.InvalidArgument, "unknown time zone "+tz, ReasonValidation, nil)
	}

	return userID, h.clock.Now().In(loc), nil
}

// fail логирует внутренние ошибки и конвертирует ошибку в статус
func (h *Handler) fail(ctx context.Context, err error) error {
	converted := handleError(err)
	if isInternal(converted) {
		userID, _ := interceptors.UserID(ctx)
		h.log.WithError(err).WithField("user_id", userID).Error("request failed")
	}
	return converted
}

// ListNotes возвращает заметки пользователя после фильтра, поиска и сортировки
func (h *Handler) ListNotes(ctx context.Context, req *notesv1.ListNotesRequest) (*notesv1.ListNotesResponse, error) {
	userID, now, err := h.requestScope(ctx, req.Timezone)
	if err != nil {
		return nil, err
	}

	filter, err := query.ParseFilter(req.DateFilter, req.SpecificDate, req.Search, req.Sort)
	if err != nil {
		return nil, h.fail(ctx, err)
	}

	notes, err := h.noteService.Query(ctx, userID, filter, now)
	if err != nil {
		return nil, h.fail(ctx, err)
	}

	return &notesv1.ListNotesResponse{
		Notes: converter.ModelsToAPI(notes, now.Location()),
		Total: int32(len(notes)),
	}, nil
}

// GetNote возвращает заметку по её UUID
func (h *Handler) GetNote(ctx context.Context, req *notesv1.GetNoteRequest) (*notesv1.GetNoteResponse, error) {
	userID, now, err := h.requestScope(ctx, req.Timezone)
	if err != nil {
		return nil, err
	}

	note, err := h.noteService.Get(ctx, userID, req.Id)
	if errors.Is(err, repository.ErrNoteNotFound) {
		return nil, noteNotFound(req.Id)
	}
	if err != nil {
		return nil, h.fail(ctx, err)
	}

	return &notesv1.GetNoteResponse{Note: converter.ModelToAPI(note, now.Location())}, nil
}

// CreateNote создает новую заметку
func (h *Handler) CreateNote(ctx context.Context, req *notesv1.CreateNoteRequest) (*notesv1.CreateNoteResponse, error) {
	userID, now, err := h.requestScope(ctx, req.Timezone)
	if err != nil {
		return nil, err
	}

	note, err := h.noteService.Create(ctx, userID, req.Title, req.Content, req.NoteDate)
	if err != nil {
		return nil, h.fail(ctx, err)
	}

	return &notesv1.CreateNoteResponse{Note: converter.ModelToAPI(note, now.Location())}, nil
}

// UpdateNote заменяет title и content существующей заметки
func (h *Handler) UpdateNote(ctx context.Context, req *notesv1.UpdateNoteRequest) (*notesv1.UpdateNoteResponse, error) {
	userID, now, err := h.requestScope(ctx, req.Timezone)
	if err != nil {
		return nil, err
	}

	note, err := h.noteService.Update(ctx, userID, req.Id, req.Title, req.Content)
	if errors.Is(err, repository.ErrNoteNotFound) {
		return nil, noteNotFound(req.Id)
	}
	if err != nil {
		return nil, h.fail(ctx, err)
	}

	return &notesv1.UpdateNoteResponse{Note: converter.ModelToAPI(note, now.Location())}, nil
}

// DeleteNote удаляет заметку по UUID
func (h *Handler) DeleteNote(ctx context.Context, req *notesv1.DeleteNoteRequest) (*notesv1.DeleteNoteResponse, error) {
	userID, ok := interceptors.UserID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	err := h.noteService.Delete(ctx, userID, req.Id)
	if errors.Is(err, repository.ErrNoteNotFound) {
		return nil, noteNotFound(req.Id)
	}
	if err != nil {
		return nil, h.fail(ctx, err)
	}

	return &notesv1.DeleteNoteResponse{}, nil
}

// GetCalendar возвращает сетку месяца с количеством заметок по дням
func (h *Handler) GetCalendar(ctx context.Context, req *notesv1.GetCalendarRequest) (*notesv1.GetCalendarResponse, error) {
	userID, now, err := h.requestScope(ctx, req.Timezone)
	if err != nil {
		return nil, err
	}

	cal, err := h.noteService.Calendar(ctx, userID, int(req.Year), time.Month(req.Month), now)
	if err != nil {
		return nil, h.fail(ctx, err)
	}

	return converter.CalendarToAPI(cal), nil
}

// SubscribeToChanges server-side streaming: отправляет события об изменениях
// заметок пользователя. Первым приходит "subscribed", затем события и
// периодические heartbeat. Стрим закрывается при отмене клиентом или
// остановке сервера.
func (h *Handler) SubscribeToChanges(req *notesv1.SubscribeToChangesRequest, stream grpc.ServerStreamingServer[notesv1.ChangeEvent]) error {
	ctx := stream.Context()
	userID, ok := interceptors.UserID(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "unauthenticated")
	}

	events, unsubscribe := h.noteService.Subscribe(userID)
	defer unsubscribe()

	log := h.log.WithField("user_id", userID)
	log.Info("client subscribed to changes")
	defer log.Info("client unsubscribed from changes")

	if err := stream.Send(h.event(notesv1.ChangeType_CHANGE_TYPE_SUBSCRIBED)); err != nil {
		return err
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-h.serverCtx.Done():
			return status.Error(codes.Unavailable, "server is shutting down")
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := stream.Send(converter.EventToAPI(ev)); err != nil {
				return err
			}
		case <-ticker.C:
			if err := stream.Send(h.event(notesv1.ChangeType_CHANGE_TYPE_HEARTBEAT)); err != nil {
				return err
			}
		}
	}
}

func (h *Handler) event(t notesv1.ChangeType) *notesv1.ChangeEvent {
	return &notesv1.ChangeEvent{Type: t, Timestamp: timestamppb.New(h.clock.Now())}
}
