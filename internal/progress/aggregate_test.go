package progress

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func score(f float64) *float64 { return &f }

func TestSummarizeMonthTodoCounts(t *testing.T) {
	todos := []Todo{
		{ID: "1", CreatedAt: strptr("2025-11-01T08:00:00Z"), CompletedAt: strptr("2025-11-02T09:00:00Z")},
		{ID: "2", CreatedAt: strptr("2025-11-03T08:00:00Z"), CompletedAt: nil},
	}

	sum := SummarizeMonth("2025-11", todos, nil, nil, nil)
	assert.Equal(t, 2, sum.TodosCreated)
	assert.Equal(t, 1, sum.TodosCompleted)
}

func TestSummarizeMonthTodoCountsSpanMonths(t *testing.T) {
	// created last month, completed this month: counts only toward
	// this month's completions
	todos := []Todo{
		{ID: "1", CreatedAt: strptr("2025-10-28T08:00:00Z"), CompletedAt: strptr("2025-11-01T09:00:00Z")},
	}

	sum := SummarizeMonth("2025-11", todos, nil, nil, nil)
	assert.Equal(t, 0, sum.TodosCreated)
	assert.Equal(t, 1, sum.TodosCompleted)
}

func TestSummarizeMonthSkipsTodosMissingTimestamps(t *testing.T) {
	todos := []Todo{
		{ID: "legacy"}, // no timestamps at all
		{ID: "2", CreatedAt: strptr("2025-11-03T08:00:00Z")},
	}

	sum := SummarizeMonth("2025-11", todos, nil, nil, nil)
	assert.Equal(t, 1, sum.TodosCreated)
	assert.Equal(t, 0, sum.TodosCompleted)
}

func TestSummarizeMonthShoppingBestPerDay(t *testing.T) {
	shopping := []Session{
		{DateKey: "2025-11-05", Score: score(3)},
		{DateKey: "2025-11-05", Score: score(5)},
		{DateKey: "2025-11-06", Score: score(2)},
		{DateKey: "2025-10-31", Score: score(9)}, // other month
		{DateKey: "2025-11-07"},                  // no score, skipped
		{Score: score(4)},                        // no date key, skipped
	}

	sum := SummarizeMonth("2025-11", nil, shopping, nil, nil)
	assert.Equal(t, []DayBest{
		{Day: 5, BestScore: 5},
		{Day: 6, BestScore: 2},
	}, sum.ShoppingDaily)
}

func TestSummarizeMonthExerciseCountsPerDay(t *testing.T) {
	exercise := []Session{
		{DateKey: "2025-11-02"},
		{DateKey: "2025-11-02"},
		{DateKey: "2025-11-10"},
		{DateKey: "bogus"},
	}

	sum := SummarizeMonth("2025-11", nil, nil, exercise, nil)
	assert.Equal(t, []DayCount{
		{Day: 2, Count: 2},
		{Day: 10, Count: 1},
	}, sum.ExerciseDaily)
}

func TestSummarizeMonthNoteLookup(t *testing.T) {
	notes := map[string]NoteEntry{
		"2025-11": {Note: "slept well", UpdatedAt: "2025-11-30T20:00:00Z"},
	}

	sum := SummarizeMonth("2025-11", nil, nil, nil, notes)
	require.NotNil(t, sum.Note)
	assert.Equal(t, "slept well", sum.Note.Note)

	sum = SummarizeMonth("2025-10", nil, nil, nil, notes)
	assert.Nil(t, sum.Note)
}

func TestFeedbackHigh(t *testing.T) {
	// 6 created, 5 completed (rate 0.833), 9 activity days
	var todos []Todo
	for i := 0; i < 6; i++ {
		td := Todo{CreatedAt: strptr("2025-11-01T08:00:00Z")}
		if i < 5 {
			td.CompletedAt = strptr("2025-11-02T08:00:00Z")
		}
		todos = append(todos, td)
	}
	shopping := []Session{
		{DateKey: "2025-11-01", Score: score(1)},
		{DateKey: "2025-11-02", Score: score(1)},
		{DateKey: "2025-11-03", Score: score(1)},
		{DateKey: "2025-11-04", Score: score(1)},
	}
	exercise := []Session{
		{DateKey: "2025-11-05"},
		{DateKey: "2025-11-06"},
		{DateKey: "2025-11-07"},
		{DateKey: "2025-11-08"},
		{DateKey: "2025-11-09"},
	}

	sum := SummarizeMonth("2025-11", todos, shopping, exercise, nil)
	assert.Equal(t, FeedbackHigh, sum.Feedback)
}

func TestFeedbackActivityDaysNotDeduplicated(t *testing.T) {
	// 4 shopping days and 4 exercise days on the SAME dates still sum
	// to 8 activity days
	var todos []Todo
	for i := 0; i < 5; i++ {
		todos = append(todos, Todo{
			CreatedAt:   strptr("2025-11-01T08:00:00Z"),
			CompletedAt: strptr("2025-11-01T09:00:00Z"),
		})
	}
	var shopping, exercise []Session
	for _, dk := range []string{"2025-11-01", "2025-11-02", "2025-11-03", "2025-11-04"} {
		shopping = append(shopping, Session{DateKey: dk, Score: score(1)})
		exercise = append(exercise, Session{DateKey: dk})
	}

	sum := SummarizeMonth("2025-11", todos, shopping, exercise, nil)
	assert.Equal(t, FeedbackHigh, sum.Feedback)
}

func TestFeedbackOK(t *testing.T) {
	sum := SummarizeMonth("2025-11", []Todo{{CreatedAt: strptr("2025-11-01T08:00:00Z")}}, nil, nil, nil)
	assert.Equal(t, FeedbackOK, sum.Feedback)

	sum = SummarizeMonth("2025-11", nil, nil, []Session{{DateKey: "2025-11-01"}}, nil)
	assert.Equal(t, FeedbackOK, sum.Feedback)
}

func TestFeedbackLow(t *testing.T) {
	sum := SummarizeMonth("2025-11", nil, nil, nil, nil)
	assert.Equal(t, FeedbackLow, sum.Feedback)
}

func TestSummarizeMonthIdempotent(t *testing.T) {
	todos := []Todo{
		{ID: "1", CreatedAt: strptr("2025-11-01T08:00:00Z"), CompletedAt: strptr("2025-11-02T09:00:00Z")},
	}
	shopping := []Session{{DateKey: "2025-11-05", Score: score(3)}}
	exercise := []Session{{DateKey: "2025-11-06"}}
	notes := map[string]NoteEntry{"2025-11": {Note: "ok month"}}

	first := SummarizeMonth("2025-11", todos, shopping, exercise, notes)
	second := SummarizeMonth("2025-11", todos, shopping, exercise, notes)
	assert.Equal(t, first, second)
}

func TestSessionDecodeToleratesNonNumericScore(t *testing.T) {
	raw := `[
		{"id":"a","dateKey":"2025-11-05","score":5},
		{"id":"b","dateKey":"2025-11-05","score":"high"},
		{"id":"c","dateKey":"2025-11-06"}
	]`

	var sessions []Session
	require.NoError(t, json.Unmarshal([]byte(raw), &sessions))
	require.Len(t, sessions, 3)
	require.NotNil(t, sessions[0].Score)
	assert.Equal(t, 5.0, *sessions[0].Score)
	assert.Nil(t, sessions[1].Score, "non-numeric score decodes as absent")
	assert.Nil(t, sessions[2].Score)

	// the bad-score record contributes nothing to the aggregate
	sum := SummarizeMonth("2025-11", nil, sessions, nil, nil)
	assert.Equal(t, []DayBest{{Day: 5, BestScore: 5}}, sum.ShoppingDaily)
}

func TestShoppingTieKeepsFirstSeenMaximum(t *testing.T) {
	shopping := []Session{
		{ID: "first", DateKey: "2025-11-05", Score: score(5)},
		{ID: "second", DateKey: "2025-11-05", Score: score(5)},
	}
	sum := SummarizeMonth("2025-11", nil, shopping, nil, nil)
	assert.Equal(t, []DayBest{{Day: 5, BestScore: 5}}, sum.ShoppingDaily)
}
