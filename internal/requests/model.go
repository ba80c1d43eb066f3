package requests

import "time"

// Status is the request lifecycle vocabulary. A cancelled pending request
// is deleted rather than marked, so no cancelled state exists here.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// Request is a patient's consultation request. Everything but Status is
// immutable after creation; SuggestedSpecialty is computed once from the
// symptom text and never recomputed from the answers.
type Request struct {
	ID                 string    `json:"id"`
	PatientUsername    string    `json:"patient_username"`
	Symptom            string    `json:"symptom"`
	Answers            []string  `json:"answers"`
	SuggestedSpecialty string    `json:"suggested_specialty"`
	Status             Status    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// AcceptMethod selects how an acceptance is scheduled.
type AcceptMethod string

const (
	// MethodNextSlot consumes the doctor's earliest declared slot.
	MethodNextSlot AcceptMethod = "next_slot"
	// MethodWindow books an explicit doctor-entered time window.
	MethodWindow AcceptMethod = "window"
)

// AcceptChoice parameterizes the single acceptance operation. StartTime
// and EndTime are RFC 3339 strings and only read for MethodWindow.
type AcceptChoice struct {
	Method    AcceptMethod `json:"method"`
	StartTime string       `json:"start_time,omitempty"`
	EndTime   string       `json:"end_time,omitempty"`
	Mode      string       `json:"mode,omitempty"`
	Notes     string       `json:"notes,omitempty"`
}
