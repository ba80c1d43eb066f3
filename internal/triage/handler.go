package triage

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

// Handler exposes the triage flow over HTTP.
type Handler struct {
	svc    *Service
	logger *logging.Logger
}

// NewHandler creates a triage handler.
func NewHandler(svc *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// QuestionsResponse is returned by GET /api/triage/questions.
type QuestionsResponse struct {
	Symptom   string     `json:"symptom"`
	Questions []Question `json:"questions"`
}

// Questions handles GET /api/triage/questions?symptom=...
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	symptom := r.URL.Query().Get("symptom")
	questions, err := h.svc.Questions(symptom)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, QuestionsResponse{Symptom: symptom, Questions: questions})
}

// SaveProgress handles PUT /api/triage/progress.
func (h *Handler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}
	var p Progress
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	if err := h.svc.SaveProgress(r.Context(), sess, p); err != nil {
		switch {
		case errors.Is(err, ErrPatientOnly):
			writeError(w, http.StatusForbidden, err)
		case errors.Is(err, ErrEmptySymptom), errors.Is(err, ErrBadProgress):
			writeError(w, http.StatusUnprocessableEntity, err)
		default:
			h.logger.Error("autosave failed", "username", sess.Username, "error", err)
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Resume handles GET /api/triage/progress.
func (h *Handler) Resume(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}

	p, err := h.svc.Resume(r.Context(), sess)
	if err != nil {
		switch {
		case errors.Is(err, ErrPatientOnly):
			writeError(w, http.StatusForbidden, err)
		case errors.Is(err, ErrNoSavedProgress):
			writeError(w, http.StatusNotFound, err)
		default:
			h.logger.Error("resume failed", "username", sess.Username, "error", err)
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Discard handles DELETE /api/triage/progress.
func (h *Handler) Discard(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}
	if err := h.svc.Discard(r.Context(), sess); err != nil {
		if errors.Is(err, ErrPatientOnly) {
			writeError(w, http.StatusForbidden, err)
			return
		}
		h.logger.Error("discard failed", "username", sess.Username, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
