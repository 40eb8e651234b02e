package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-calendar/internal/model"
)

// minus5 фиксированный пояс UTC-5, чтобы локальная и UTC даты расходились
var minus5 = time.FixedZone("UTC-5", -5*60*60)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01-05", want: "2024-01-05"},
		{in: "2024-01-05T23:00:00Z", want: "2024-01-05"},
		{in: "2024-01-05 08:15:00", want: "2024-01-05"},
		{in: " 2024-12-31 ", want: "2024-12-31"},
		{in: "2024-1-5", wantErr: true},
		{in: "2024-02-30", wantErr: true},
		{in: "", wantErr: true},
		{in: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_StringZeroPads(t *testing.T) {
	assert.Equal(t, "2024-03-05", Date{Year: 2024, Month: time.March, Day: 5}.String())
	assert.Equal(t, "0999-11-09", Date{Year: 999, Month: time.November, Day: 9}.String())
}

func TestDate_AddDaysCrossesMonthAndLeapDay(t *testing.T) {
	d := Date{Year: 2024, Month: time.March, Day: 1}
	assert.Equal(t, "2024-02-29", d.AddDays(-1).String())
	assert.Equal(t, "2024-03-31", d.AddDays(30).String())
	assert.Equal(t, "2023-12-31", Date{Year: 2024, Month: time.January, Day: 1}.AddDays(-1).String())
}

func TestDate_Compare(t *testing.T) {
	a := Date{Year: 2024, Month: time.March, Day: 10}
	b := Date{Year: 2024, Month: time.April, Day: 1}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
}

func TestResolve_ExplicitDateWins(t *testing.T) {
	n := model.Note{
		NoteDate:  "2024-01-05",
		CreatedAt: time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "2024-01-05", Resolve(n, minus5).String())
	assert.Equal(t, "2024-01-05", Resolve(n, time.UTC).String())
}

func TestResolve_ExplicitDateIsTruncatedNotConverted(t *testing.T) {
	// время в NoteDate отбрасывается без перевода в локальный пояс
	n := model.Note{
		NoteDate:  "2024-01-05T02:00:00Z",
		CreatedAt: time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "2024-01-05", Resolve(n, minus5).String())
}

func TestResolve_CreatedAtUsesLocalCalendar(t *testing.T) {
	// 2024-03-11 04:59 UTC это еще 2024-03-10 23:59 в UTC-5
	n := model.Note{CreatedAt: time.Date(2024, time.March, 10, 23, 59, 0, 0, minus5)}

	assert.Equal(t, "2024-03-10", Resolve(n, minus5).String())
	assert.Equal(t, "2024-03-11", Resolve(n, time.UTC).String())
}

func TestResolve_MalformedNoteDateFallsBackToCreatedAt(t *testing.T) {
	n := model.Note{
		NoteDate:  "05/01/2024",
		CreatedAt: time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "2024-06-01", Resolve(n, time.UTC).String())
}

func TestResolve_IgnoresUpdatedAt(t *testing.T) {
	n := model.Note{
		CreatedAt: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "2024-03-01", Resolve(n, time.UTC).String())
}
