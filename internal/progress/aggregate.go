// Package progress aggregates the client's raw activity logs (to-dos,
// shopping-game sessions, exercise sessions, monthly notes) into
// per-month summaries.
package progress

import (
	"sort"

	"sukoon/internal/datekey"
)

// Feedback thresholds. These are the tuning the product shipped with;
// do not adjust them independently.
const (
	highMinCreated      = 5
	highMinTodoRate     = 0.7
	highMinActivityDays = 8
)

// SummarizeMonth folds the full unfiltered logs into one month's
// summary. It is a pure function: no I/O, identical inputs give an
// identical summary. Malformed records (missing timestamps, missing or
// unparseable date keys, nil scores) are excluded from their aggregate
// rather than failing the whole computation.
func SummarizeMonth(monthKey string, todos []Todo, shopping, exercise []Session, notes map[string]NoteEntry) MonthSummary {
	sum := MonthSummary{Month: monthKey}

	for _, t := range todos {
		if inMonth(t.CreatedAt, monthKey) {
			sum.TodosCreated++
		}
		if inMonth(t.CompletedAt, monthKey) {
			sum.TodosCompleted++
		}
	}

	best := map[int]float64{}
	for _, s := range shopping {
		day, ok := sessionDay(s, monthKey)
		if !ok || s.Score == nil {
			continue
		}
		// Strict > keeps the first-seen maximum on ties.
		if cur, seen := best[day]; !seen || *s.Score > cur {
			best[day] = *s.Score
		}
	}
	for day, score := range best {
		sum.ShoppingDaily = append(sum.ShoppingDaily, DayBest{Day: day, BestScore: score})
	}
	sort.Slice(sum.ShoppingDaily, func(i, j int) bool {
		return sum.ShoppingDaily[i].Day < sum.ShoppingDaily[j].Day
	})

	counts := map[int]int{}
	for _, s := range exercise {
		day, ok := sessionDay(s, monthKey)
		if !ok {
			continue
		}
		counts[day]++
	}
	for day, n := range counts {
		sum.ExerciseDaily = append(sum.ExerciseDaily, DayCount{Day: day, Count: n})
	}
	sort.Slice(sum.ExerciseDaily, func(i, j int) bool {
		return sum.ExerciseDaily[i].Day < sum.ExerciseDaily[j].Day
	})

	if entry, ok := notes[monthKey]; ok {
		sum.Note = &entry
	}

	sum.Feedback = feedback(sum.TodosCreated, sum.TodosCompleted, len(sum.ShoppingDaily), len(sum.ExerciseDaily))
	return sum
}

// inMonth reports whether an ISO-8601 timestamp falls in the month,
// by prefix. Nil or too-short values never match.
func inMonth(ts *string, monthKey string) bool {
	return ts != nil && len(*ts) >= len(monthKey) && (*ts)[:len(monthKey)] == monthKey
}

// sessionDay returns the day-of-month for a session in the target
// month, or ok=false when the date key is absent, malformed, or from
// another month.
func sessionDay(s Session, monthKey string) (int, bool) {
	if len(s.DateKey) < 7 || s.DateKey[:7] != monthKey {
		return 0, false
	}
	d, err := datekey.Parse(s.DateKey)
	if err != nil {
		return 0, false
	}
	return d.Day, true
}

// feedback applies the fixed three-tier heuristic. Activity days from
// the two sources are summed, not deduplicated: a day with both a game
// and an exercise session counts twice.
func feedback(created, completed, shoppingDays, exerciseDays int) FeedbackLevel {
	rate := 0.0
	if created > 0 {
		rate = float64(completed) / float64(created)
	}
	if created >= highMinCreated && rate >= highMinTodoRate && shoppingDays+exerciseDays >= highMinActivityDays {
		return FeedbackHigh
	}
	if created > 0 || shoppingDays > 0 || exerciseDays > 0 {
		return FeedbackOK
	}
	return FeedbackLow
}
