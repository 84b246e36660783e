package events

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

// Create handles POST /api/events
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	ev, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.log.Error("failed to create event", "error", err)
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.jsonResponse(w, ev, http.StatusCreated)
}

// List handles GET /api/events
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Error("failed to list events", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []*Event{}
	}

	h.jsonResponse(w, events, http.StatusOK)
}

// Get handles GET /api/events/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.jsonError(w, "event ID required", http.StatusBadRequest)
		return
	}

	ev, err := h.svc.GetByID(r.Context(), id)
	if errors.Is(err, ErrEventNotFound) {
		h.jsonError(w, "event not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to get event", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, ev, http.StatusOK)
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
