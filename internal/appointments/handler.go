package appointments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

// Handler exposes the appointment ledger over HTTP.
type Handler struct {
	svc    *Service
	logger *logging.Logger
}

// NewHandler creates an appointments handler.
func NewHandler(svc *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// List handles GET /api/appointments. Doctors see their own schedule,
// patients see their own bookings.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}

	list, err := h.svc.ListFor(r.Context(), sess)
	if err != nil {
		h.logger.Error("list appointments failed", "username", sess.Username, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = make([]Appointment, 0)
	}
	writeJSON(w, http.StatusOK, list)
}

// UpdateStatusRequest is the body of PATCH /api/appointments/{id}/status.
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

// UpdateStatus handles PATCH /api/appointments/{id}/status (doctor only).
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	apptID := chi.URLParam(r, "id")
	appt, err := h.svc.UpdateStatus(r.Context(), sess, apptID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrDoctorOnly), errors.Is(err, ErrNotParticipant):
			writeError(w, http.StatusForbidden, err)
		case errors.Is(err, ErrBadStatus):
			writeError(w, http.StatusUnprocessableEntity, err)
		case errors.Is(err, ErrAppointmentNotFound):
			writeError(w, http.StatusNotFound, err)
		default:
			h.logger.Error("update appointment status failed", "appointment_id", apptID, "error", err)
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, appt)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
