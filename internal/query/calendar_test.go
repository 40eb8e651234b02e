package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-calendar/internal/model"
)

func TestBuildCalendar_MonthStartingOnWednesday(t *testing.T) {
	// 1 мая 2024 года это среда
	cal := BuildCalendar(nil, 2024, time.May, time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, 3, cal.Leading)
	assert.Len(t, cal.Days, 31)
	assert.Equal(t, "May 2024", cal.Label())
}

func TestBuildCalendar_CountsByResolvedDate(t *testing.T) {
	notes := []model.Note{
		dated("2024-02-29"),
		dated("2024-02-29"),
		{ID: "late", CreatedAt: time.Date(2024, time.February, 10, 23, 30, 0, 0, minus5)},
		dated("2024-03-01"),
	}
	now := time.Date(2024, time.February, 10, 9, 0, 0, 0, minus5)

	cal := BuildCalendar(notes, 2024, time.February, now)

	require.Len(t, cal.Days, 29)
	assert.Equal(t, 2, cal.Days[28].Count)
	assert.Equal(t, 1, cal.Days[9].Count, "late evening local note stays on its local day")
	assert.Equal(t, 0, cal.Days[10].Count)
	assert.Equal(t, 3, cal.Total())
	assert.True(t, cal.Days[9].Today)
	assert.False(t, cal.Days[8].Today)
}

func TestDay_DotsAreCappedButCountIsExact(t *testing.T) {
	notes := make([]model.Note, 5)
	for i := range notes {
		notes[i] = dated("2024-03-10")
	}

	cal := BuildCalendar(notes, 2024, time.March, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))

	day := cal.Days[9]
	assert.Equal(t, 5, day.Count)
	assert.Equal(t, MaxDots, day.Dots())
}

func TestCalendar_Weeks(t *testing.T) {
	cal := BuildCalendar(nil, 2024, time.May, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))

	weeks := cal.Weeks()

	require.Len(t, weeks, 5)
	for _, w := range weeks {
		assert.Len(t, w, 7)
	}
	assert.Nil(t, weeks[0][0])
	assert.Nil(t, weeks[0][2])
	require.NotNil(t, weeks[0][3])
	assert.Equal(t, 1, weeks[0][3].Date.Day)
	assert.Equal(t, time.Wednesday, weeks[0][3].Date.Weekday())
	require.NotNil(t, weeks[4][5])
	assert.Equal(t, 31, weeks[4][5].Date.Day)
	assert.Nil(t, weeks[4][6])
}

func TestBuildCalendar_NormalizesMonthOverflow(t *testing.T) {
	cal := BuildCalendar(nil, 2024, time.Month(13), time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 2025, cal.Year)
	assert.Equal(t, time.January, cal.Month)
}

func TestShiftMonth(t *testing.T) {
	y, m := ShiftMonth(2024, time.January, -1)
	assert.Equal(t, 2023, y)
	assert.Equal(t, time.December, m)

	y, m = ShiftMonth(2024, time.December, 1)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.January, m)
}
