package identity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

// Handler exposes signup, login, and profile endpoints.
type Handler struct {
	svc    *Service
	logger *logging.Logger
}

// NewHandler creates an identity handler.
func NewHandler(svc *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// Register handles POST /auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	user, token, err := h.svc.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			writeError(w, http.StatusConflict, err)
		case errors.Is(err, ErrMissingFields), errors.Is(err, ErrUnknownRole):
			writeError(w, http.StatusUnprocessableEntity, err)
		default:
			h.logger.Error("register failed", "error", err)
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: user.Public()})
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	user, token, err := h.svc.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err)
			return
		}
		h.logger.Error("login failed", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: user.Public()})
}

// Me handles GET /api/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}
	user, err := h.svc.Get(r.Context(), sess.Username)
	if err != nil {
		writeError(w, http.StatusNotFound, ErrUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

// UpdateProfileRequest carries optional doctor profile edits.
type UpdateProfileRequest struct {
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
}

// UpdateProfile handles PUT /api/me/profile (doctor only).
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	user, err := h.svc.UpdateDoctorProfile(r.Context(), sess, req.Bio, req.Location)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			writeError(w, http.StatusForbidden, errors.New("doctor role required"))
		case errors.Is(err, ErrUserNotFound):
			writeError(w, http.StatusNotFound, err)
		default:
			h.logger.Error("profile update failed", "username", sess.Username, "error", err)
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
