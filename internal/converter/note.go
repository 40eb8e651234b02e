package converter

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"notes-calendar/internal/model"
	"notes-calendar/internal/query"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

// APIToModel конвертирует заметку API в domain модель
func APIToModel(apiNote *notesv1.Note) model.Note {
	if apiNote == nil {
		return model.Note{}
	}

	return model.Note{
		ID:        apiNote.Id,
		Title:     apiNote.Title,
		Content:   apiNote.Content,
		NoteDate:  apiNote.NoteDate,
		CreatedAt: apiNote.CreatedAt.AsTime(),
		UpdatedAt: apiNote.UpdatedAt.AsTime(),
	}
}

// APIsToModels конвертирует слайс заметок API в domain модели
func APIsToModels(apiNotes []*notesv1.Note) []model.Note {
	notes := make([]model.Note, 0, len(apiNotes))
	for _, n := range apiNotes {
		if n != nil {
			notes = append(notes, APIToModel(n))
		}
	}
	return notes
}

// ModelToAPI конвертирует domain модель в заметку API.
// ResolvedDate считается в поясе loc.
func ModelToAPI(note model.Note, loc *time.Location) *notesv1.Note {
	return &notesv1.Note{
		Id:           note.ID,
		Title:        note.Title,
		DisplayTitle: note.DisplayTitle(),
		Content:      note.Content,
		NoteDate:     note.NoteDate,
		ResolvedDate: query.Resolve(note, loc).String(),
		CreatedAt:    timestamppb.New(note.CreatedAt),
		UpdatedAt:    timestamppb.New(note.UpdatedAt),
	}
}

// ModelsToAPI конвертирует слайс domain моделей в заметки API
func ModelsToAPI(notes []model.Note, loc *time.Location) []*notesv1.Note {
	apiNotes := make([]*notesv1.Note, len(notes))
	for i, note := range notes {
		apiNotes[i] = ModelToAPI(note, loc)
	}
	return apiNotes
}

// UserToAPI конвертирует пользователя без хэша пароля
func UserToAPI(user model.User) *notesv1.User {
	return &notesv1.User{
		Id:        user.ID,
		Email:     user.Email,
		CreatedAt: timestamppb.New(user.CreatedAt),
	}
}

// CalendarToAPI конвертирует сетку месяца
func CalendarToAPI(cal query.Calendar) *notesv1.GetCalendarResponse {
	days := make([]*notesv1.CalendarDay, len(cal.Days))
	for i, d := range cal.Days {
		days[i] = &notesv1.CalendarDay{
			Date:  d.Date.String(),
			Day:   int32(d.Date.Day),
			Count: int32(d.Count),
			Dots:  int32(d.Dots()),
			Today: d.Today,
		}
	}

	return &notesv1.GetCalendarResponse{
		Year:    int32(cal.Year),
		Month:   int32(cal.Month),
		Label:   cal.Label(),
		Leading: int32(cal.Leading),
		Total:   int32(cal.Total()),
		Days:    days,
	}
}

var changeTypes = map[model.ChangeKind]notesv1.ChangeType{
	model.ChangeCreated: notesv1.ChangeType_CHANGE_TYPE_CREATED,
	model.ChangeUpdated: notesv1.ChangeType_CHANGE_TYPE_UPDATED,
	model.ChangeDeleted: notesv1.ChangeType_CHANGE_TYPE_DELETED,
}

// EventToAPI конвертирует событие изменения
func EventToAPI(ev model.ChangeEvent) *notesv1.ChangeEvent {
	return &notesv1.ChangeEvent{
		Type:      changeTypes[ev.Kind],
		NoteId:    ev.NoteID,
		Timestamp: timestamppb.New(ev.At),
	}
}

// Location возвращает пояс tz, или fallback для пустой строки
func Location(tz string, fallback *time.Location) (*time.Location, error) {
	if tz == "" {
		if fallback == nil {
			return time.Local, nil
		}
		return fallback, nil
	}
	return time.LoadLocation(tz)
}
