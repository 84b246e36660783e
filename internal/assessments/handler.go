package assessments

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

// Save handles POST /api/assessments
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var input SaveInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Save(r.Context(), input)
	if err != nil {
		h.log.Error("failed to save assessment", "error", err)
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.jsonResponse(w, a, http.StatusCreated)
}

// History handles GET /api/assessments?user=
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		h.jsonError(w, "user required", http.StatusBadRequest)
		return
	}

	list, err := h.svc.History(r.Context(), user)
	if err != nil {
		h.log.Error("failed to get assessment history", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*Assessment{}
	}

	h.jsonResponse(w, list, http.StatusOK)
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
