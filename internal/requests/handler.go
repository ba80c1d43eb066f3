package requests

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
	"github.com/Simply-Coder-start/Medi-Triage/internal/slots"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

// Handler exposes the request lifecycle over HTTP.
type Handler struct {
	svc    *Service
	logger *logging.Logger
}

// NewHandler creates a requests handler.
func NewHandler(svc *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// CreateRequest is the body of POST /api/requests.
type CreateRequest struct {
	Symptom string   `json:"symptom"`
	Answers []string `json:"answers"`
}

// Create handles POST /api/requests (patient only).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	created, err := h.svc.Create(r.Context(), sess, req.Symptom, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, ErrPatientOnly):
			writeError(w, http.StatusForbidden, err)
		case errors.Is(err, ErrMissingSymptom), errors.Is(err, ErrBadAnswers):
			writeError(w, http.StatusUnprocessableEntity, err)
		default:
			h.logger.Error("create request failed", "patient", sess.Username, "error", err)
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /api/requests (patient's own, newest first).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}

	list, err := h.svc.ListForPatient(r.Context(), sess)
	if err != nil {
		if errors.Is(err, ErrPatientOnly) {
			writeError(w, http.StatusForbidden, err)
			return
		}
		h.logger.Error("list requests failed", "patient", sess.Username, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = make([]Request, 0)
	}
	writeJSON(w, http.StatusOK, list)
}

// Inbox handles GET /api/requests/inbox (doctor's matching pending list).
func (h *Handler) Inbox(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}

	list, err := h.svc.Inbox(r.Context(), sess)
	if err != nil {
		if errors.Is(err, ErrDoctorOnly) {
			writeError(w, http.StatusForbidden, err)
			return
		}
		h.logger.Error("inbox failed", "doctor", sess.Username, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = make([]Request, 0)
	}
	writeJSON(w, http.StatusOK, list)
}

// Cancel handles DELETE /api/requests/{id} (patient only, pending only).
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}

	requestID := chi.URLParam(r, "id")
	if err := h.svc.Cancel(r.Context(), sess, requestID); err != nil {
		switch {
		case errors.Is(err, ErrPatientOnly), errors.Is(err, ErrNotOwner):
			writeError(w, http.StatusForbidden, err)
		case errors.Is(err, ErrRequestNotFound):
			writeError(w, http.StatusNotFound, err)
		case errors.Is(err, ErrNotCancellable):
			writeError(w, http.StatusConflict, err)
		default:
			h.logger.Error("cancel request failed", "request_id", requestID, "error", err)
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Accept handles POST /api/requests/{id}/accept (doctor only).
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}
	var choice AcceptChoice
	if err := json.NewDecoder(r.Body).Decode(&choice); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	requestID := chi.URLParam(r, "id")
	res, err := h.svc.Accept(r.Context(), sess, requestID, choice)
	if err != nil {
		h.writeDecisionError(w, sess, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Reject handles POST /api/requests/{id}/reject (doctor only).
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}

	requestID := chi.URLParam(r, "id")
	updated, err := h.svc.Reject(r.Context(), sess, requestID)
	if err != nil {
		h.writeDecisionError(w, sess, requestID, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) writeDecisionError(w http.ResponseWriter, sess session.Session, requestID string, err error) {
	switch {
	case errors.Is(err, ErrDoctorOnly), errors.Is(err, ErrSpecialtyMismatch):
		writeError(w, http.StatusForbidden, err)
	case errors.Is(err, ErrRequestNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, ErrNotPending):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, ErrBadChoice),
		errors.Is(err, ErrBadMode),
		errors.Is(err, slots.ErrWindowIncomplete),
		errors.Is(err, slots.ErrWindowUnparseable),
		errors.Is(err, slots.ErrWindowZeroLength),
		errors.Is(err, slots.ErrWindowInverted),
		errors.Is(err, slots.ErrWindowInPast):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		h.logger.Error("request decision failed", "request_id", requestID, "doctor", sess.Username, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
