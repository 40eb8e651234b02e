package model

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	// UntitledTitle подставляется вместо пустого заголовка при отображении и сортировке
	UntitledTitle = "Untitled"

	// MaxTitleLength максимальная длина заголовка в символах
	MaxTitleLength = 200
	// MaxContentLength максимальная длина содержимого в символах
	MaxContentLength = 100000
)

// ErrInvalidArgument оборачивается всеми ошибками валидации входных данных
var ErrInvalidArgument = errors.New("invalid argument")

// Note представляет заметку (доменная модель)
type Note struct {
	ID        string    // UUID заметки
	UserID    string    // Владелец заметки
	Title     string    // Заголовок, может быть пустым
	Content   string    // Содержание, может быть пустым
	NoteDate  string    // Явная календарная дата YYYY-MM-DD, пустая строка если не задана
	CreatedAt time.Time // Дата создания, не меняется
	UpdatedAt time.Time // Дата последнего обновления
}

// Validate проверяет валидность заметки
func (n *Note) Validate() error {
	if utf8.RuneCountInString(n.Title) > MaxTitleLength {
		return fmt.Errorf("%w: title is longer than %d characters", ErrInvalidArgument, MaxTitleLength)
	}
	if utf8.RuneCountInString(n.Content) > MaxContentLength {
		return fmt.Errorf("%w: content is longer than %d characters", ErrInvalidArgument, MaxContentLength)
	}
	return nil
}

// DisplayTitle возвращает заголовок для отображения
func (n *Note) DisplayTitle() string {
	if n.Title == "" {
		return UntitledTitle
	}
	return n.Title
}
