package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sukoon/internal/datekey"
)

func TestServiceSummarizeDefaultsToCurrentMonth(t *testing.T) {
	svc := NewService()

	sum := svc.Summarize(SummaryInput{})
	assert.Equal(t, datekey.MonthFromTime(time.Now()), sum.Month)
}

func TestServiceSummarizeUsesRequestedMonth(t *testing.T) {
	svc := NewService()

	sum := svc.Summarize(SummaryInput{
		Month: "2025-11",
		Todos: []Todo{{CreatedAt: strptr("2025-11-01T08:00:00Z")}},
	})
	assert.Equal(t, "2025-11", sum.Month)
	assert.Equal(t, 1, sum.TodosCreated)
}

func TestRenderNote(t *testing.T) {
	svc := NewService()

	html := svc.RenderNote("slept **well** this month")
	assert.Contains(t, html, "<strong>well</strong>")
}
