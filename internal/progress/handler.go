package progress

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type summaryResponse struct {
	MonthSummary
	NoteHTML string `json:"noteHtml,omitempty"`
}

// Summarize handles POST /api/progress/summary. The endpoint is a
// stateless compute surface: the client posts its local logs and gets
// back the month summary plus the rendered note.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var input SummaryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	summary := h.svc.Summarize(input)
	resp := summaryResponse{MonthSummary: summary}
	if summary.Note != nil && summary.Note.Note != "" {
		resp.NoteHTML = h.svc.RenderNote(summary.Note.Note)
	}

	h.jsonResponse(w, resp, http.StatusOK)
}

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
