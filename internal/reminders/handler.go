package reminders

import (
	"encoding/json"
	"errors"
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

// Create handles POST /api/reminders
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	rem, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.log.Error("failed to create reminder", "error", err)
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.jsonResponse(w, rem, http.StatusCreated)
}

// ListByDate handles GET /api/reminders?user=&date=
func (h *Handler) ListByDate(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	date := r.URL.Query().Get("date")
	if user == "" || date == "" {
		h.jsonError(w, "user and date are required", http.StatusBadRequest)
		return
	}

	reminders, err := h.svc.ListByDate(r.Context(), user, date)
	if err != nil {
		h.log.Error("failed to list reminders", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if reminders == nil {
		reminders = []*Reminder{}
	}

	h.jsonResponse(w, reminders, http.StatusOK)
}

// Delete handles DELETE /api/reminders/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.jsonError(w, "reminder ID required", http.StatusBadRequest)
		return
	}

	err := h.svc.Delete(r.Context(), id)
	if errors.Is(err, ErrReminderNotFound) {
		h.jsonError(w, "reminder not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to delete reminder", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
