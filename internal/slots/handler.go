package slots

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

// Handler exposes slot management over HTTP.
type Handler struct {
	svc    *Service
	logger *logging.Logger
}

// NewHandler creates a slots handler.
func NewHandler(svc *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// AddSlotRequest is the body of POST /api/slots.
type AddSlotRequest struct {
	At time.Time `json:"at"`
}

// Add handles POST /api/slots.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}
	var req AddSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	slot, err := h.svc.Add(r.Context(), sess, req.At)
	if err != nil {
		switch {
		case errors.Is(err, ErrDoctorOnly):
			writeError(w, http.StatusForbidden, err)
		case errors.Is(err, ErrMissingInstant):
			writeError(w, http.StatusUnprocessableEntity, err)
		default:
			h.logger.Error("add slot failed", "doctor", sess.Username, "error", err)
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}

// List handles GET /api/slots.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}

	list, err := h.svc.List(r.Context(), sess)
	if err != nil {
		if errors.Is(err, ErrDoctorOnly) {
			writeError(w, http.StatusForbidden, err)
			return
		}
		h.logger.Error("list slots failed", "doctor", sess.Username, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = make([]Slot, 0)
	}
	writeJSON(w, http.StatusOK, list)
}

// Remove handles DELETE /api/slots/{id}.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}

	slotID := chi.URLParam(r, "id")
	if err := h.svc.Remove(r.Context(), sess, slotID); err != nil {
		switch {
		case errors.Is(err, ErrDoctorOnly):
			writeError(w, http.StatusForbidden, err)
		case errors.Is(err, ErrSlotNotFound):
			writeError(w, http.StatusNotFound, err)
		default:
			h.logger.Error("remove slot failed", "doctor", sess.Username, "slot_id", slotID, "error", err)
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		}
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
