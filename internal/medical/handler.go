package medical

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// maxUploadBytes caps medical record uploads at 10 MiB.
const maxUploadBytes = 10 << 20

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Upload handles POST /api/medical/upload (multipart form: user, file)
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.jsonError(w, "invalid multipart body", http.StatusBadRequest)
		return
	}

	user := r.FormValue("user")
	if user == "" {
		h.jsonError(w, "user required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.jsonError(w, "file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	record, err := h.svc.Upload(r.Context(), user, header.Filename, file)
	if err != nil {
		h.log.Error("failed to upload medical file", "error", err)
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.jsonResponse(w, record, http.StatusCreated)
}

// List handles GET /api/medical?user=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		h.jsonError(w, "user required", http.StatusBadRequest)
		return
	}

	files, err := h.svc.List(r.Context(), user)
	if err != nil {
		h.log.Error("failed to list medical files", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if files == nil {
		files = []*File{}
	}

	h.jsonResponse(w, files, http.StatusOK)
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
