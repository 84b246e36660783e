package progress

import "encoding/json"

// Todo is a client to-do record. Timestamps are ISO-8601 strings;
// legacy records may be missing either one, so both are pointers.
type Todo struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	Done        bool    `json:"done"`
	CreatedAt   *string `json:"createdAt"`
	CompletedAt *string `json:"completedAt"`
}

// Session is one completed game or exercise session. Score is set for
// scored games and nil for plain occurrence logs (exercise).
type Session struct {
	ID      string   `json:"id"`
	DateKey string   `json:"dateKey"`
	Score   *float64 `json:"score,omitempty"`
}

// UnmarshalJSON tolerates legacy session entries whose score is not a
// number: the record decodes with a nil Score instead of failing the
// whole batch.
func (s *Session) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      string          `json:"id"`
		DateKey string          `json:"dateKey"`
		Score   json.RawMessage `json:"score"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID = raw.ID
	s.DateKey = raw.DateKey
	s.Score = nil
	if len(raw.Score) > 0 {
		var f float64
		if err := json.Unmarshal(raw.Score, &f); err == nil {
			s.Score = &f
		}
	}
	return nil
}

// NoteEntry is the free-text monthly note, at most one per month key,
// overwritten on save.
type NoteEntry struct {
	Note      string `json:"note"`
	UpdatedAt string `json:"updatedAt"`
}

// DayBest is the best score seen on one day of the month.
type DayBest struct {
	Day       int     `json:"day"`
	BestScore float64 `json:"bestScore"`
}

// DayCount is the number of sessions logged on one day of the month.
type DayCount struct {
	Day   int `json:"day"`
	Count int `json:"count"`
}

// FeedbackLevel is the qualitative tier derived from a month of
// activity.
type FeedbackLevel string

const (
	FeedbackLow  FeedbackLevel = "low"
	FeedbackOK   FeedbackLevel = "ok"
	FeedbackHigh FeedbackLevel = "high"
)

// MonthSummary is the aggregated per-month view shown on the progress
// screen: to-do counts, per-day game and exercise activity, the
// monthly note if one exists, and the derived feedback tier.
type MonthSummary struct {
	Month          string        `json:"month"`
	TodosCreated   int           `json:"todosCreated"`
	TodosCompleted int           `json:"todosCompleted"`
	ShoppingDaily  []DayBest     `json:"shoppingDaily"`
	ExerciseDaily  []DayCount    `json:"exerciseDaily"`
	Note           *NoteEntry    `json:"note,omitempty"`
	Feedback       FeedbackLevel `json:"feedback"`
}
