package users

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

// Register handles POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	user, err := h.svc.Register(r.Context(), input)
	if errors.Is(err, ErrMobileTaken) {
		h.jsonError(w, "user already exists with this mobile number", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.log.Error("failed to register user", "error", err)
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.jsonResponse(w, user, http.StatusCreated)
}

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	user, err := h.svc.Login(r.Context(), input)
	if errors.Is(err, ErrUserNotFound) {
		h.jsonError(w, "user not found, please register", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to log in user", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, user, http.StatusOK)
}

// Profile handles GET /api/user/profile?id=
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.jsonError(w, "user ID required", http.StatusBadRequest)
		return
	}

	user, err := h.svc.Profile(r.Context(), id)
	if errors.Is(err, ErrUserNotFound) {
		h.jsonError(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to get profile", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, user, http.StatusOK)
}

// UpdateProfile handles PUT /api/user/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var input UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	user, err := h.svc.UpdateProfile(r.Context(), input)
	if errors.Is(err, ErrUserNotFound) {
		h.jsonError(w, "user not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, ErrMobileTaken) {
		h.jsonError(w, "user already exists with this mobile number", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.log.Error("failed to update profile", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, user, http.StatusOK)
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
