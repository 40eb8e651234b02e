package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-calendar/internal/model"
)

func dated(date string) model.Note {
	return model.Note{
		ID:        date,
		NoteDate:  date,
		CreatedAt: time.Date(2020, time.January, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestParseDateFilter_RoundTripsIdentifiers(t *testing.T) {
	for _, name := range []string{"all", "today", "yesterday", "last7", "last30", "thisMonth", "specific"} {
		f, err := ParseDateFilter(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, f.String())
	}
}

func TestParseDateFilter_RejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "Today", "thismonth", "last_7", "week"} {
		_, err := ParseDateFilter(name)
		require.Error(t, err, name)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	}
}

func TestMatchDate_TodayBoundaryAtLocalMidnight(t *testing.T) {
	n := model.Note{CreatedAt: time.Date(2024, time.March, 10, 23, 59, 0, 0, minus5)}

	onTenth := time.Date(2024, time.March, 10, 8, 0, 0, 0, minus5)
	onEleventh := time.Date(2024, time.March, 11, 0, 0, 0, 0, minus5)

	assert.True(t, MatchDate(n, DateToday, Date{}, onTenth))
	assert.False(t, MatchDate(n, DateToday, Date{}, onEleventh))
	assert.True(t, MatchDate(n, DateYesterday, Date{}, onEleventh))
}

func TestMatchDate_Last7Boundary(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, MatchDate(dated("2024-03-03"), DateLast7, Date{}, now), "exactly 7 days ago is included")
	assert.False(t, MatchDate(dated("2024-03-02"), DateLast7, Date{}, now), "8 days ago is excluded")
	assert.True(t, MatchDate(dated("2024-03-10"), DateLast7, Date{}, now), "today is included")
	assert.False(t, MatchDate(dated("2024-03-11"), DateLast7, Date{}, now), "future dates are excluded")
}

func TestMatchDate_Last30Boundary(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, MatchDate(dated("2024-02-09"), DateLast30, Date{}, now))
	assert.False(t, MatchDate(dated("2024-02-08"), DateLast30, Date{}, now))
}

func TestMatchDate_YesterdayAcrossLeapDay(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 30, 0, 0, time.UTC)

	assert.True(t, MatchDate(dated("2024-02-29"), DateYesterday, Date{}, now))
	assert.False(t, MatchDate(dated("2024-03-01"), DateYesterday, Date{}, now))
}

func TestMatchDate_ThisMonth(t *testing.T) {
	now := time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, MatchDate(dated("2024-02-01"), DateThisMonth, Date{}, now))
	assert.True(t, MatchDate(dated("2024-02-29"), DateThisMonth, Date{}, now))
	assert.False(t, MatchDate(dated("2024-03-01"), DateThisMonth, Date{}, now))
	assert.False(t, MatchDate(dated("2023-02-15"), DateThisMonth, Date{}, now))
}

func TestMatchDate_Specific(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	day := Date{Year: 2024, Month: time.January, Day: 5}

	assert.True(t, MatchDate(dated("2024-01-05"), DateSpecific, day, now))
	assert.False(t, MatchDate(dated("2024-01-06"), DateSpecific, day, now))
	// без явной даты используется сегодняшний день
	assert.True(t, MatchDate(dated("2024-03-10"), DateSpecific, Date{}, now))
}

func TestMatchDate_AllAlwaysMatches(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, MatchDate(dated("1999-01-01"), DateAll, Date{}, now))
	assert.True(t, MatchDate(dated("2099-01-01"), DateAll, Date{}, now))
}

func TestWindow_UnknownFilterIsEmpty(t *testing.T) {
	today := Date{Year: 2024, Month: time.March, Day: 10}

	w := DateFilter(42).Window(today, Date{})

	assert.False(t, w.Contains(today))
	assert.False(t, DateFilter(42).Valid())
}
