// Package localstore is the companion's on-disk stand-in for the
// mobile client's key-value storage: one JSON file holding whole
// values under fixed string keys, last writer wins. The keys match the
// client's so an exported storage dump loads unchanged.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"sukoon/internal/agenda"
	"sukoon/internal/datekey"
	"sukoon/internal/progress"
)

const (
	todosKey            = "sukoon_todos_v1"
	remindersKey        = "sukoon_reminders_v1"
	shoppingSessionsKey = "sukoon_shopping_game_sessions_v1"
	exerciseSessionsKey = "sukoon_exercise_sessions_v1"
	monthlyNotesKey     = "sukoon_monthly_notes_v1"
)

type Store struct {
	path string
	data map[string]json.RawMessage
}

// Open loads the store file, treating a missing file as an empty
// store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: map[string]json.RawMessage{}}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("decode store %s: %w", path, err)
	}
	return s, nil
}

// flush writes the whole store back to disk. Mutating helpers call it
// on every change, mirroring the client's setItem-per-mutation flow.
func (s *Store) flush() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

func (s *Store) get(key string, v any) error {
	raw, ok := s.data[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.data[key] = raw
	return s.flush()
}

// --- To-dos ---

func (s *Store) Todos() ([]progress.Todo, error) {
	var todos []progress.Todo
	if err := s.get(todosKey, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// AddTodo prepends a new open to-do, stamping its creation time.
func (s *Store) AddTodo(text string, now time.Time) (progress.Todo, error) {
	todos, err := s.Todos()
	if err != nil {
		return progress.Todo{}, err
	}

	created := now.UTC().Format(time.RFC3339)
	todo := progress.Todo{
		ID:        uuid.NewString(),
		Text:      text,
		Done:      false,
		CreatedAt: &created,
	}
	if err := s.set(todosKey, append([]progress.Todo{todo}, todos...)); err != nil {
		return progress.Todo{}, err
	}
	return todo, nil
}

var ErrTodoNotFound = errors.New("todo not found")

// ToggleTodo flips a to-do's done state, setting or clearing its
// completion time. Legacy records with no creation time get one
// backfilled on toggle, the way the client repaired them.
func (s *Store) ToggleTodo(id string, now time.Time) (progress.Todo, error) {
	todos, err := s.Todos()
	if err != nil {
		return progress.Todo{}, err
	}

	iso := now.UTC().Format(time.RFC3339)
	var toggled *progress.Todo
	for i := range todos {
		if todos[i].ID != id {
			continue
		}
		todos[i].Done = !todos[i].Done
		if todos[i].CreatedAt == nil {
			todos[i].CreatedAt = &iso
		}
		if todos[i].Done {
			todos[i].CompletedAt = &iso
		} else {
			todos[i].CompletedAt = nil
		}
		toggled = &todos[i]
		break
	}
	if toggled == nil {
		return progress.Todo{}, ErrTodoNotFound
	}
	if err := s.set(todosKey, todos); err != nil {
		return progress.Todo{}, err
	}
	return *toggled, nil
}

// ClearCompleted drops every done to-do and reports how many were
// removed.
func (s *Store) ClearCompleted() (int, error) {
	todos, err := s.Todos()
	if err != nil {
		return 0, err
	}

	kept := todos[:0]
	for _, t := range todos {
		if !t.Done {
			kept = append(kept, t)
		}
	}
	removed := len(todos) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.set(todosKey, kept)
}

// --- Reminders ---

func (s *Store) Reminders() ([]agenda.Reminder, error) {
	var reminders []agenda.Reminder
	if err := s.get(remindersKey, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// AddReminder appends a reminder, assigning an id when none is set
// (promoted events arrive with their derived id already filled in).
func (s *Store) AddReminder(r agenda.Reminder) (agenda.Reminder, error) {
	reminders, err := s.Reminders()
	if err != nil {
		return agenda.Reminder{}, err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if err := s.set(remindersKey, append(reminders, r)); err != nil {
		return agenda.Reminder{}, err
	}
	return r, nil
}

// RemoveReminder deletes by id; an unknown id is a no-op.
func (s *Store) RemoveReminder(id string) error {
	reminders, err := s.Reminders()
	if err != nil {
		return err
	}
	return s.set(remindersKey, agenda.RemoveByID(reminders, id))
}

// --- Sessions ---

func (s *Store) ShoppingSessions() ([]progress.Session, error) {
	var sessions []progress.Session
	if err := s.get(shoppingSessionsKey, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *Store) ExerciseSessions() ([]progress.Session, error) {
	var sessions []progress.Session
	if err := s.get(exerciseSessionsKey, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// LogShoppingSession appends one scored game session under today's
// day key. Sessions are append-only and never mutated.
func (s *Store) LogShoppingSession(score float64, now time.Time) (progress.Session, error) {
	sessions, err := s.ShoppingSessions()
	if err != nil {
		return progress.Session{}, err
	}
	sess := progress.Session{
		ID:      uuid.NewString(),
		DateKey: datekey.FromTime(now),
		Score:   &score,
	}
	if err := s.set(shoppingSessionsKey, append(sessions, sess)); err != nil {
		return progress.Session{}, err
	}
	return sess, nil
}

// LogExerciseSession appends one exercise occurrence under today's
// day key.
func (s *Store) LogExerciseSession(now time.Time) (progress.Session, error) {
	sessions, err := s.ExerciseSessions()
	if err != nil {
		return progress.Session{}, err
	}
	sess := progress.Session{
		ID:      uuid.NewString(),
		DateKey: datekey.FromTime(now),
	}
	if err := s.set(exerciseSessionsKey, append(sessions, sess)); err != nil {
		return progress.Session{}, err
	}
	return sess, nil
}

// --- Monthly notes ---

func (s *Store) Notes() (map[string]progress.NoteEntry, error) {
	notes := map[string]progress.NoteEntry{}
	if err := s.get(monthlyNotesKey, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// SaveNote overwrites the note for a month (at most one note per
// month) and stamps the update time.
func (s *Store) SaveNote(monthKey, note string, now time.Time) error {
	notes, err := s.Notes()
	if err != nil {
		return err
	}
	notes[monthKey] = progress.NoteEntry{
		Note:      note,
		UpdatedAt: now.UTC().Format(time.RFC3339),
	}
	return s.set(monthlyNotesKey, notes)
}
