package localstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sukoon/internal/agenda"
	"sukoon/internal/datekey"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sukoon.json"))
	require.NoError(t, err)
	return s
}

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s := tempStore(t)

	todos, err := s.Todos()
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestTodoLifecycle(t *testing.T) {
	s := tempStore(t)
	now := time.Date(2025, time.November, 5, 10, 0, 0, 0, time.UTC)

	first, err := s.AddTodo("water the plants", now)
	require.NoError(t, err)
	second, err := s.AddTodo("call Neha", now.Add(time.Minute))
	require.NoError(t, err)

	todos, err := s.Todos()
	require.NoError(t, err)
	require.Len(t, todos, 2)
	// newest first, like the client
	assert.Equal(t, second.ID, todos[0].ID)
	require.NotNil(t, todos[1].CreatedAt)
	assert.Equal(t, "2025-11-05T10:00:00Z", *todos[1].CreatedAt)
	assert.Nil(t, todos[1].CompletedAt)

	done, err := s.ToggleTodo(first.ID, now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, done.Done)
	require.NotNil(t, done.CompletedAt)

	undone, err := s.ToggleTodo(first.ID, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.False(t, undone.Done)
	assert.Nil(t, undone.CompletedAt, "completion time cleared on un-toggle")
}

func TestToggleTodoUnknownID(t *testing.T) {
	s := tempStore(t)
	_, err := s.ToggleTodo("missing", time.Now())
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestClearCompleted(t *testing.T) {
	s := tempStore(t)
	now := time.Now()

	keep, err := s.AddTodo("keep me", now)
	require.NoError(t, err)
	drop, err := s.AddTodo("drop me", now)
	require.NoError(t, err)
	_, err = s.ToggleTodo(drop.ID, now)
	require.NoError(t, err)

	removed, err := s.ClearCompleted()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	todos, err := s.Todos()
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, keep.ID, todos[0].ID)
}

func TestSessionsLoggedUnderTodaysKey(t *testing.T) {
	s := tempStore(t)
	now := time.Date(2025, time.November, 5, 18, 30, 0, 0, time.Local)

	_, err := s.LogShoppingSession(7, now)
	require.NoError(t, err)
	_, err = s.LogShoppingSession(4, now)
	require.NoError(t, err)
	_, err = s.LogExerciseSession(now)
	require.NoError(t, err)

	shopping, err := s.ShoppingSessions()
	require.NoError(t, err)
	require.Len(t, shopping, 2)
	assert.Equal(t, datekey.FromTime(now), shopping[0].DateKey)
	require.NotNil(t, shopping[0].Score)
	assert.Equal(t, 7.0, *shopping[0].Score)

	exercise, err := s.ExerciseSessions()
	require.NoError(t, err)
	require.Len(t, exercise, 1)
	assert.Nil(t, exercise[0].Score)
}

func TestSaveNoteOverwrites(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.SaveNote("2025-11", "first draft", time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, s.SaveNote("2025-11", "final note", time.Date(2025, 11, 30, 9, 0, 0, 0, time.UTC)))

	notes, err := s.Notes()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "final note", notes["2025-11"].Note)
	assert.Equal(t, "2025-11-30T09:00:00Z", notes["2025-11"].UpdatedAt)
}

func TestRemindersRoundTrip(t *testing.T) {
	s := tempStore(t)

	added, err := s.AddReminder(agenda.Reminder{
		Title:    "take medicine",
		Time:     "9:00 a.m.",
		Category: "Medicine",
		Repeat:   "Daily",
		DateKey:  "2025-11-05",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	promoted, err := s.AddReminder(agenda.PromoteEvent(agenda.Event{ID: "7", Title: "bhajan evening", DateKey: "2025-11-09"}))
	require.NoError(t, err)
	assert.Equal(t, "event_7", promoted.ID, "promoted events keep their derived id")

	require.NoError(t, s.RemoveReminder(added.ID))
	require.NoError(t, s.RemoveReminder("unknown-id")) // silent no-op

	reminders, err := s.Reminders()
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "event_7", reminders[0].ID)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sukoon.json")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.AddTodo("persist me", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.SaveNote("2025-11", "note", time.Now()))

	reopened, err := Open(path)
	require.NoError(t, err)
	todos, err := reopened.Todos()
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "persist me", todos[0].Text)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestOpenLegacyClientDump(t *testing.T) {
	// A dump in the exact shape the mobile client stored, including a
	// legacy todo with no timestamps and a session with a bad score.
	dump := `{
		"sukoon_todos_v1": [{"id":"1","text":"old","done":false}],
		"sukoon_shopping_game_sessions_v1": [{"id":"s1","dateKey":"2025-11-05","score":"oops"}],
		"sukoon_monthly_notes_v1": {"2025-11":{"note":"hi","updatedAt":"2025-11-01T00:00:00Z"}}
	}`
	path := filepath.Join(t.TempDir(), "sukoon.json")
	require.NoError(t, os.WriteFile(path, []byte(dump), 0o600))

	s, err := Open(path)
	require.NoError(t, err)

	todos, err := s.Todos()
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Nil(t, todos[0].CreatedAt)

	sessions, err := s.ShoppingSessions()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Nil(t, sessions[0].Score)

	notes, err := s.Notes()
	require.NoError(t, err)
	assert.Equal(t, "hi", notes["2025-11"].Note)
}
