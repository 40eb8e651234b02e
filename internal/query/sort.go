package query

import (
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"notes-calendar/internal/model"
)

// SortOrder порядок вывода заметок
type SortOrder uint8

const (
	SortNewest SortOrder = iota
	SortOldest
	SortTitleAsc
	SortTitleDesc
)

var sortOrderNames = [...]string{
	SortNewest:    "newest",
	SortOldest:    "oldest",
	SortTitleAsc:  "title-asc",
	SortTitleDesc: "title-desc",
}

func (o SortOrder) String() string {
	if int(o) < len(sortOrderNames) {
		return sortOrderNames[o]
	}
	return fmt.Sprintf("SortOrder(%d)", uint8(o))
}

// Valid сообщает, что значение входит в перечисление
func (o SortOrder) Valid() bool {
	return int(o) < len(sortOrderNames)
}

// ParseSortOrder разбирает строковый идентификатор сортировки
func ParseSortOrder(s string) (SortOrder, error) {
	for i, name := range sortOrderNames {
		if name == s {
			return SortOrder(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown sort order %q", model.ErrInvalidArgument, s)
}

// newTitleCollator создает collator для сравнения заголовков без учета регистра.
// Collator не потокобезопасен, поэтому создается на каждую сортировку.
func newTitleCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// Comparator возвращает функцию сравнения двух заметок для порядка order.
// Сортировки по дате сравнивают только канонические даты, время суток не учитывается.
func Comparator(order SortOrder, loc *time.Location) func(a, b model.Note) int {
	switch order {
	case SortNewest:
		return func(a, b model.Note) int {
			return Resolve(b, loc).Compare(Resolve(a, loc))
		}
	case SortOldest:
		return func(a, b model.Note) int {
			return Resolve(a, loc).Compare(Resolve(b, loc))
		}
	case SortTitleAsc, SortTitleDesc:
		c := newTitleCollator()
		sign := 1
		if order == SortTitleDesc {
			sign = -1
		}
		return func(a, b model.Note) int {
			return sign * c.CompareString(a.DisplayTitle(), b.DisplayTitle())
		}
	default:
		return func(a, b model.Note) int { return 0 }
	}
}

// Sort упорядочивает notes на месте. Сортировка стабильная:
// заметки с равным ключом сохраняют исходный относительный порядок.
func Sort(notes []model.Note, order SortOrder, loc *time.Location) {
	switch order {
	case SortNewest, SortOldest:
		// ключи считаются один раз на заметку
		type keyed struct {
			note model.Note
			date Date
		}
		items := make([]keyed, len(notes))
		for i, n := range notes {
			items[i] = keyed{note: n, date: Resolve(n, loc)}
		}
		slices.SortStableFunc(items, func(a, b keyed) int {
			if order == SortNewest {
				return b.date.Compare(a.date)
			}
			return a.date.Compare(b.date)
		})
		for i := range items {
			notes[i] = items[i].note
		}
	default:
		slices.SortStableFunc(notes, Comparator(order, loc))
	}
}
