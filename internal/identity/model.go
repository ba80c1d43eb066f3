package identity

import (
	"strings"
	"time"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
)

// DefaultLocation is shown for doctors who left the clinic location blank.
const DefaultLocation = "Clinic Location Not Set"

// User is an account record. PasswordHash is a bcrypt hash; the plaintext
// never touches the store.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"password_hash"`
	Role         session.Role `json:"role"`
	Name         string       `json:"name"`
	CreatedAt    time.Time    `json:"created_at"`

	// Doctor-only fields.
	Specialty   string `json:"specialty,omitempty"`
	Location    string `json:"location,omitempty"`
	Bio         string `json:"bio,omitempty"`
	CertDataURL string `json:"cert_data_url,omitempty"`
}

// Profile is the externally visible view of a user.
type Profile struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	Role      session.Role `json:"role"`
	Name      string       `json:"name"`
	Specialty string       `json:"specialty,omitempty"`
	Location  string       `json:"location,omitempty"`
	Bio       string       `json:"bio,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// Public strips credential material from the record.
func (u *User) Public() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Name:      u.Name,
		Specialty: u.Specialty,
		Location:  u.Location,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest is the signup payload for either role.
type RegisterRequest struct {
	Username    string       `json:"username"`
	Password    string       `json:"password"`
	Name        string       `json:"name"`
	Role        session.Role `json:"role"`
	Specialty   string       `json:"specialty,omitempty"`
	Location    string       `json:"location,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	CertDataURL string       `json:"cert_data_url,omitempty"`
}

// Validate checks required fields. Doctors additionally need a specialty.
func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Username) == "" || r.Password == "" {
		return ErrMissingFields
	}
	if !r.Role.Valid() {
		return ErrUnknownRole
	}
	if r.Role == session.RoleDoctor && strings.TrimSpace(r.Specialty) == "" {
		return ErrMissingFields
	}
	return nil
}

// LoginRequest authenticates an existing account. Role must match the
// stored record: a patient cannot log in through the doctor door.
type LoginRequest struct {
	Username string       `json:"username"`
	Password string       `json:"password"`
	Role     session.Role `json:"role"`
}
