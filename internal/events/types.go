package events

import "time"

// Event is anything the bus can carry. Recipients names the usernames a
// refresh should reach.
type Event interface {
	Type() string
	Recipients() []string
}

type RequestCreatedV1 struct {
	EventID         string    `json:"event_id"`
	RequestID       string    `json:"request_id"`
	PatientUsername string    `json:"patient_username"`
	Specialty       string    `json:"specialty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func (RequestCreatedV1) Type() string { return "request.created.v1" }

func (e RequestCreatedV1) Recipients() []string {
	return []string{e.PatientUsername}
}

type RequestStatusChangedV1 struct {
	EventID         string    `json:"event_id"`
	RequestID       string    `json:"request_id"`
	PatientUsername string    `json:"patient_username"`
	DoctorUsername  string    `json:"doctor_username,omitempty"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func (RequestStatusChangedV1) Type() string { return "request.status_changed.v1" }

func (e RequestStatusChangedV1) Recipients() []string {
	if e.DoctorUsername == "" {
		return []string{e.PatientUsername}
	}
	return []string{e.PatientUsername, e.DoctorUsername}
}

type AppointmentCreatedV1 struct {
	EventID         string     `json:"event_id"`
	AppointmentID   string     `json:"appointment_id"`
	RequestID       string     `json:"request_id"`
	DoctorUsername  string     `json:"doctor_username"`
	PatientUsername string     `json:"patient_username"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	OccurredAt      time.Time  `json:"occurred_at"`
}

func (AppointmentCreatedV1) Type() string { return "appointment.created.v1" }

func (e AppointmentCreatedV1) Recipients() []string {
	return []string{e.PatientUsername, e.DoctorUsername}
}

type AppointmentStatusChangedV1 struct {
	EventID         string    `json:"event_id"`
	AppointmentID   string    `json:"appointment_id"`
	DoctorUsername  string    `json:"doctor_username"`
	PatientUsername string    `json:"patient_username"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func (AppointmentStatusChangedV1) Type() string { return "appointment.status_changed.v1" }

func (e AppointmentStatusChangedV1) Recipients() []string {
	return []string{e.PatientUsername, e.DoctorUsername}
}
