package query

import (
	"fmt"
	"strings"
	"time"

	"notes-calendar/internal/model"
)

// DateLayout формат календарной даты заметки
const DateLayout = "2006-01-02"

// Date календарная дата без времени и часового пояса.
// Значение сравнимо через ==, поэтому годится как ключ группировки.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf возвращает календарную дату момента t в его собственном часовом поясе
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate разбирает дату YYYY-MM-DD.
// Если строка содержит время (через 'T' или пробел), оно отбрасывается без конвертации пояса.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String возвращает дату в формате YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero сообщает, что дата не задана
func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare возвращает -1, 0 или +1
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// AddDays сдвигает дату на n календарных дней
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Weekday день недели (воскресенье = 0)
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Resolve возвращает каноническую календарную дату заметки.
// Явная NoteDate побеждает всегда. Иначе берется локальная дата CreatedAt в поясе loc.
// Неразборчивая NoteDate игнорируется, и дата берется из CreatedAt.
func Resolve(n model.Note, loc *time.Location) Date {
	if n.NoteDate != "" {
		if d, err := ParseDate(n.NoteDate); err == nil {
			return d
		}
	}
	if loc == nil {
		loc = time.Local
	}
	return DateOf(n.CreatedAt.In(loc))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
