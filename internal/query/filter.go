package query

import (
	"fmt"
	"time"

	"notes-calendar/internal/model"
)

// DateFilter вариант фильтра по дате.
// Строковые идентификаторы стабильны и используются во внешних API.
type DateFilter uint8

const (
	DateAll DateFilter = iota
	DateToday
	DateYesterday
	DateLast7
	DateLast30
	DateThisMonth
	DateSpecific
)

var dateFilterNames = [...]string{
	DateAll:       "all",
	DateToday:     "today",
	DateYesterday: "yesterday",
	DateLast7:     "last7",
	DateLast30:    "last30",
	DateThisMonth: "thisMonth",
	DateSpecific:  "specific",
}

func (f DateFilter) String() string {
	if int(f) < len(dateFilterNames) {
		return dateFilterNames[f]
	}
	return fmt.Sprintf("DateFilter(%d)", uint8(f))
}

// Valid сообщает, что значение входит в перечисление
func (f DateFilter) Valid() bool {
	return int(f) < len(dateFilterNames)
}

// ParseDateFilter разбирает строковый идентификатор фильтра (с учетом регистра)
func ParseDateFilter(s string) (DateFilter, error) {
	for i, name := range dateFilterNames {
		if name == s {
			return DateFilter(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown date filter %q", model.ErrInvalidArgument, s)
}

// Window включающее окно календарных дат [From, To]
type Window struct {
	From, To  Date
	Unbounded bool
}

// Contains сообщает, попадает ли дата в окно
func (w Window) Contains(d Date) bool {
	if w.Unbounded {
		return true
	}
	return !d.Before(w.From) && !d.After(w.To)
}

// Window вычисляет окно фильтра относительно сегодняшней даты.
// specific используется только для DateSpecific, нулевое значение означает сегодня.
// last7 и last30 включают день ровно 7 (30) дней назад и сегодняшний день, но не будущие даты.
func (f DateFilter) Window(today, specific Date) Window {
	switch f {
	case DateAll:
		return Window{Unbounded: true}
	case DateToday:
		return Window{From: today, To: today}
	case DateYesterday:
		y := today.AddDays(-1)
		return Window{From: y, To: y}
	case DateLast7:
		return Window{From: today.AddDays(-7), To: today}
	case DateLast30:
		return Window{From: today.AddDays(-30), To: today}
	case DateThisMonth:
		first := Date{Year: today.Year, Month: today.Month, Day: 1}
		last := DateOf(time.Date(today.Year, today.Month+1, 0, 0, 0, 0, 0, time.UTC))
		return Window{From: first, To: last}
	case DateSpecific:
		if specific.IsZero() {
			specific = today
		}
		return Window{From: specific, To: specific}
	default:
		// пустое окно
		return Window{From: today.AddDays(1), To: today}
	}
}

// MatchDate проверяет, попадает ли каноническая дата заметки в окно фильтра на момент now.
// Пояс now задает "локальное" время.
func MatchDate(n model.Note, f DateFilter, specific Date, now time.Time) bool {
	if f == DateAll {
		return true
	}
	return f.Window(DateOf(now), specific).Contains(Resolve(n, now.Location()))
}
