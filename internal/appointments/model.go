package appointments

import "time"

// Status is the single appointment status vocabulary.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Mode is how the consultation happens.
type Mode string

const (
	ModeVideo    Mode = "video"
	ModeInPerson Mode = "in_person"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeVideo || m == ModeInPerson
}

// Appointment links a request, a doctor, and a time window. Both window
// fields nil means the doctor accepted without declared availability and
// the time is still to be scheduled. Appointments are never deleted; a
// cancellation is a status change.
type Appointment struct {
	ID              string     `json:"id"`
	RequestID       string     `json:"request_id"`
	DoctorUsername  string     `json:"doctor_username"`
	PatientUsername string     `json:"patient_username"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	Mode            Mode       `json:"mode,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Branch says which path settled a booking: the upstream endpoint or the
// local fallback. The distinction is part of the result, not swallowed.
type Branch string

const (
	BranchRemote Branch = "remote"
	BranchLocal  Branch = "local"
)

// BookResult is the outcome of a booking attempt.
type BookResult struct {
	Appointment *Appointment `json:"appointment"`
	Branch      Branch       `json:"branch"`
}
