package model

import "time"

// ChangeKind тип изменения заметок пользователя
type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

// ChangeEvent уведомление об изменении заметки.
// Подписчик не применяет его инкрементально, а перечитывает весь набор заметок.
type ChangeEvent struct {
	Kind   ChangeKind
	UserID string
	NoteID string
	At     time.Time
}
