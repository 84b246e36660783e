package progress

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(NewService(), slog.New(slog.NewTextHandler(&strings.Builder{}, nil)))
}

func TestSummarizeEndpoint(t *testing.T) {
	body := `{
		"month": "2025-11",
		"todos": [
			{"id":"1","text":"a","done":true,"createdAt":"2025-11-01T08:00:00Z","completedAt":"2025-11-02T09:00:00Z"},
			{"id":"2","text":"b","done":false,"createdAt":"2025-11-03T08:00:00Z","completedAt":null}
		],
		"shoppingSessions": [
			{"id":"s1","dateKey":"2025-11-05","score":3},
			{"id":"s2","dateKey":"2025-11-05","score":5}
		],
		"exerciseSessions": [{"id":"e1","dateKey":"2025-11-06"}],
		"notes": {"2025-11": {"note":"doing **fine**","updatedAt":"2025-11-28T10:00:00Z"}}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/progress/summary", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestHandler().Summarize(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		MonthSummary
		NoteHTML string `json:"noteHtml"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-11", resp.Month)
	assert.Equal(t, 2, resp.TodosCreated)
	assert.Equal(t, 1, resp.TodosCompleted)
	assert.Equal(t, []DayBest{{Day: 5, BestScore: 5}}, resp.ShoppingDaily)
	assert.Equal(t, []DayCount{{Day: 6, Count: 1}}, resp.ExerciseDaily)
	assert.Contains(t, resp.NoteHTML, "<strong>fine</strong>")
}

func TestSummarizeEndpointRejectsBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/progress/summary", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	newTestHandler().Summarize(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
