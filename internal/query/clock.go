package query

import "time"

// Clock источник текущего момента
type Clock interface {
	Now() time.Time
}

// ClockFunc адаптер функции к Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock часы на основе time.Now
func SystemClock() Clock {
	return ClockFunc(time.Now)
}

// FixedClock всегда возвращает t
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
