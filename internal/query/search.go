package query

import (
	"strings"

	"golang.org/x/text/cases"

	"notes-calendar/internal/model"
)

// Matcher проверяет вхождение поискового запроса в заголовок или текст заметки
type Matcher struct {
	caser  cases.Caser
	needle string
}

// NewMatcher готовит запрос: обрезает пробелы и приводит к case-folded виду
func NewMatcher(q string) *Matcher {
	caser := cases.Fold()
	return &Matcher{
		caser:  caser,
		needle: caser.String(strings.TrimSpace(q)),
	}
}

// Match пустой запрос совпадает со всем
func (m *Matcher) Match(n model.Note) bool {
	if m.needle == "" {
		return true
	}
	return strings.Contains(m.caser.String(n.Title), m.needle) ||
		strings.Contains(m.caser.String(n.Content), m.needle)
}

// MatchSearch одноразовая проверка заметки по запросу q
func MatchSearch(n model.Note, q string) bool {
	return NewMatcher(q).Match(n)
}
