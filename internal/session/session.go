// Package session carries the authenticated identity through context.
// Lifecycle operations take the session value explicitly instead of reading
// ambient process state.
package session

import "context"

// Role distinguishes the two kinds of account.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// Session identifies the acting user for a single operation.
type Session struct {
	Username string
	Role     Role
}

// IsPatient reports whether the session belongs to a patient account.
func (s Session) IsPatient() bool { return s.Role == RolePatient }

// IsDoctor reports whether the session belongs to a doctor account.
func (s Session) IsDoctor() bool { return s.Role == RoleDoctor }

type ctxKey string

const sessionKey ctxKey = "meditriage.session"

// WithSession stores the session in context.
func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// FromContext extracts the session if present.
func FromContext(ctx context.Context) (Session, bool) {
	val := ctx.Value(sessionKey)
	if val == nil {
		return Session{}, false
	}
	sess, ok := val.(Session)
	return sess, ok && sess.Username != ""
}
