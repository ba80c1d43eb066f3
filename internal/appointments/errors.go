package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned for an unknown appointment id.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrBadStatus is returned when a status update targets anything
	// other than completed or cancelled.
	ErrBadStatus = errors.New("status must be completed or cancelled")

	// ErrDoctorOnly is returned when a non-doctor updates an appointment.
	ErrDoctorOnly = errors.New("doctor session required")

	// ErrNotParticipant is returned when the acting doctor is not the
	// appointment's doctor.
	ErrNotParticipant = errors.New("appointment belongs to another doctor")

	// ErrRemoteUnconfigured signals that no upstream booking endpoint is
	// set; the caller books locally.
	ErrRemoteUnconfigured = errors.New("booking endpoint not configured")
)
