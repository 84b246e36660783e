package progress

import (
	"bytes"
	"time"

	"github.com/yuin/goldmark"

	"sukoon/internal/datekey"
)

// SummaryInput carries the client's raw logs for one summary request.
type SummaryInput struct {
	Month            string               `json:"month"`
	Todos            []Todo               `json:"todos"`
	ShoppingSessions []Session            `json:"shoppingSessions"`
	ExerciseSessions []Session            `json:"exerciseSessions"`
	Notes            map[string]NoteEntry `json:"notes"`
}

type Service struct {
	md goldmark.Markdown
}

func NewService() *Service {
	return &Service{md: goldmark.New()}
}

// Summarize computes the month summary for the input. An empty Month
// defaults to the current month on the local clock.
func (s *Service) Summarize(input SummaryInput) MonthSummary {
	month := input.Month
	if month == "" {
		month = datekey.MonthFromTime(time.Now())
	}
	return SummarizeMonth(month, input.Todos, input.ShoppingSessions, input.ExerciseSessions, input.Notes)
}

// RenderNote converts a monthly note's markdown to HTML
func (s *Service) RenderNote(note string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(note), &buf); err != nil {
		return note // Return raw content on error
	}
	return buf.String()
}
