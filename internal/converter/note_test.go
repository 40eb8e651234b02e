package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-calendar/internal/model"
	"notes-calendar/internal/query"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

func TestModelToAPI_ResolvesDateInLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	note := model.Note{
		ID:        "n1",
		CreatedAt: time.Date(2024, time.March, 10, 20, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, time.March, 10, 20, 0, 0, 0, time.UTC),
	}

	utc := ModelToAPI(note, time.UTC)
	assert.Equal(t, "2024-03-10", utc.ResolvedDate)
	assert.Equal(t, model.UntitledTitle, utc.DisplayTitle)
	assert.Equal(t, "", utc.Title)

	jst := ModelToAPI(note, tokyo)
	assert.Equal(t, "2024-03-11", jst.ResolvedDate)

	back := APIToModel(jst)
	assert.Equal(t, note, back)
}

func TestCalendarToAPI(t *testing.T) {
	now := time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC)
	notes := []model.Note{
		{ID: "a", NoteDate: "2024-02-29", CreatedAt: now},
		{ID: "b", NoteDate: "2024-02-29", CreatedAt: now},
	}
	cal := query.BuildCalendar(notes, 2024, time.February, now)

	resp := CalendarToAPI(cal)
	assert.Equal(t, "February 2024", resp.Label)
	assert.Equal(t, int32(4), resp.Leading)
	assert.Equal(t, int32(2), resp.Total)
	require.Len(t, resp.Days, 29)
	assert.Equal(t, int32(2), resp.Days[28].Count)
	assert.True(t, resp.Days[28].Today)
	assert.Equal(t, "2024-02-29", resp.Days[28].Date)
	assert.Equal(t, int32(2), resp.Days[28].Dots)
}

func TestEventToAPI(t *testing.T) {
	at := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

	ev := EventToAPI(model.ChangeEvent{Kind: model.ChangeDeleted, NoteID: "n1", At: at})

	assert.Equal(t, notesv1.ChangeType_CHANGE_TYPE_DELETED, ev.Type)
	assert.Equal(t, "n1", ev.NoteId)
	assert.Equal(t, at, ev.Timestamp.AsTime())
}

func TestLocation(t *testing.T) {
	loc, err := Location("", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = Location("Europe/Berlin", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	_, err = Location("Mars/Olympus", time.UTC)
	assert.Error(t, err)
}
