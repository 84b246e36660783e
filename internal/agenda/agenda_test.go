package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForDay(t *testing.T) {
	reminders := []Reminder{
		{ID: "1", Title: "pills", DateKey: "2025-11-05"},
		{ID: "2", Title: "walk", DateKey: "2025-11-06"},
		{ID: "3", Title: "doctor", DateKey: "2025-11-05"},
	}

	got := ForDay(reminders, "2025-11-05")
	assert.Equal(t, []string{"1", "3"}, ids(got), "insertion order kept")
	assert.Empty(t, ForDay(reminders, "2025-11-07"))
}

func TestSortAllByDateThenTime(t *testing.T) {
	reminders := []Reminder{
		{ID: "1", DateKey: "2025-11-06", Time: "8:00 a.m."},
		{ID: "2", DateKey: "2025-11-05", Time: "9:00 a.m."},
		{ID: "3", DateKey: "2025-11-05", Time: "7:00 a.m."},
	}

	got := SortAll(reminders)
	assert.Equal(t, []string{"3", "2", "1"}, ids(got))
}

func TestSortAllTimeIsLexicographicNotChronological(t *testing.T) {
	// "10:00 a.m." < "9:00 a.m." as strings; the ordering the client
	// always showed, kept as-is.
	reminders := []Reminder{
		{ID: "nine", DateKey: "2025-11-05", Time: "9:00 a.m."},
		{ID: "ten", DateKey: "2025-11-05", Time: "10:00 a.m."},
	}

	got := SortAll(reminders)
	assert.Equal(t, []string{"ten", "nine"}, ids(got))
}

func TestSortAllMissingKeysSortFirstAndStable(t *testing.T) {
	reminders := []Reminder{
		{ID: "a", DateKey: "2025-11-05"},
		{ID: "b"},
		{ID: "c"},
	}

	got := SortAll(reminders)
	assert.Equal(t, []string{"b", "c", "a"}, ids(got))

	// input untouched
	assert.Equal(t, []string{"a", "b", "c"}, ids(reminders))
}

func TestRemoveByID(t *testing.T) {
	reminders := []Reminder{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	got := RemoveByID(reminders, "2")
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestRemoveByIDUnknownIsNoOp(t *testing.T) {
	reminders := []Reminder{{ID: "1"}, {ID: "2"}}

	got := RemoveByID(reminders, "nope")
	assert.Equal(t, reminders, got)
	assert.Equal(t, []string{"1", "2"}, ids(reminders))
}

func TestPromoteEvent(t *testing.T) {
	got := PromoteEvent(Event{
		ID:      "42",
		Title:   "Morning walk group",
		Time:    "7:30 a.m.",
		DateKey: "2025-11-09",
	})

	assert.Equal(t, Reminder{
		ID:       "event_42",
		Title:    "Morning walk group",
		Time:     "7:30 a.m.",
		Category: "Event",
		Repeat:   "Once",
		DateKey:  "2025-11-09",
	}, got)
}

func ids(reminders []Reminder) []string {
	out := make([]string, len(reminders))
	for i, r := range reminders {
		out[i] = r.ID
	}
	return out
}
