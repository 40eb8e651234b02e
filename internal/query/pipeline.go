package query

import (
	"fmt"
	"time"

	"notes-calendar/internal/model"
)

// Filter состояние фильтров представления списка
type Filter struct {
	Date     DateFilter
	Specific Date // только для DateSpecific, нулевое значение означает сегодня
	Search   string
	Sort     SortOrder
}

// DefaultFilter фильтр по умолчанию: все заметки, сначала новые
func DefaultFilter() Filter {
	return Filter{Date: DateAll, Sort: SortNewest}
}

// Validate проверяет, что варианты фильтра и сортировки допустимы
func (f Filter) Validate() error {
	if !f.Date.Valid() {
		return fmt.Errorf("%w: invalid date filter %d", model.ErrInvalidArgument, uint8(f.Date))
	}
	if !f.Sort.Valid() {
		return fmt.Errorf("%w: invalid sort order %d", model.ErrInvalidArgument, uint8(f.Sort))
	}
	return nil
}

// ParseFilter собирает Filter из строковых идентификаторов.
// Пустые значения заменяются значениями по умолчанию.
func ParseFilter(dateFilter, specific, search, sort string) (Filter, error) {
	f := DefaultFilter()
	f.Search = search

	var err error
	if dateFilter != "" {
		if f.Date, err = ParseDateFilter(dateFilter); err != nil {
			return Filter{}, err
		}
	}
	if sort != "" {
		if f.Sort, err = ParseSortOrder(sort); err != nil {
			return Filter{}, err
		}
	}
	if specific != "" {
		if f.Specific, err = ParseDate(specific); err != nil {
			return Filter{}, fmt.Errorf("%w: %v", model.ErrInvalidArgument, err)
		}
	}
	return f, nil
}

// Apply строит список для отображения: фильтр по дате, затем поиск, затем сортировка.
// Входной срез не изменяется. Результат зависит только от аргументов;
// пояс now определяет локальные календарные даты.
func Apply(notes []model.Note, f Filter, now time.Time) []model.Note {
	loc := now.Location()
	window := f.Date.Window(DateOf(now), f.Specific)
	matcher := NewMatcher(f.Search)

	out := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		if !window.Contains(Resolve(n, loc)) {
			continue
		}
		if !matcher.Match(n) {
			continue
		}
		out = append(out, n)
	}

	Sort(out, f.Sort, loc)
	return out
}
