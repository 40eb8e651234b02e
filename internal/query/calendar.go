package query

import (
	"time"

	"notes-calendar/internal/model"
)

// MaxDots предел индикатора количества заметок в ячейке календаря
const MaxDots = 3

// Day ячейка календаря
type Day struct {
	Date  Date
	Count int // точное число заметок с этой канонической датой
	Today bool
}

// Dots число точек индикатора, не больше MaxDots
func (d Day) Dots() int {
	return min(d.Count, MaxDots)
}

// Calendar сетка месяца
type Calendar struct {
	Year    int
	Month   time.Month
	Leading int // пустые ячейки перед 1-м числом, воскресенье = 0
	Days    []Day
}

// BuildCalendar группирует заметки по канонической дате для месяца year/month.
// Месяц нормализуется как в time.Date (13 = январь следующего года).
func BuildCalendar(notes []model.Note, year int, month time.Month, now time.Time) Calendar {
	loc := now.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	year, month = first.Year(), first.Month()
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	counts := make(map[Date]int, len(notes))
	for _, n := range notes {
		counts[Resolve(n, loc)]++
	}

	today := DateOf(now)
	days := make([]Day, last)
	for i := range days {
		d := Date{Year: year, Month: month, Day: i + 1}
		days[i] = Day{Date: d, Count: counts[d], Today: d == today}
	}

	return Calendar{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
		Days:    days,
	}
}

// Label название месяца, например "March 2024"
func (c Calendar) Label() string {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// Total сумма заметок за месяц
func (c Calendar) Total() int {
	total := 0
	for _, d := range c.Days {
		total += d.Count
	}
	return total
}

// Weeks раскладывает месяц по строкам из 7 ячеек.
// nil означает пустую ячейку до 1-го числа или после последнего.
func (c Calendar) Weeks() [][]*Day {
	cells := make([]*Day, 0, c.Leading+len(c.Days)+6)
	for range c.Leading {
		cells = append(cells, nil)
	}
	for i := range c.Days {
		cells = append(cells, &c.Days[i])
	}
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}

	weeks := make([][]*Day, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

// ShiftMonth сдвигает месяц на delta
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
