package requests

import "errors"

var (
	// ErrRequestNotFound is returned for an unknown request id.
	ErrRequestNotFound = errors.New("request not found")

	// ErrPatientOnly is returned when a non-patient creates or cancels.
	ErrPatientOnly = errors.New("patient session required")

	// ErrDoctorOnly is returned when a non-doctor decides a request.
	ErrDoctorOnly = errors.New("doctor session required")

	// ErrNotOwner is returned when a patient touches someone else's request.
	ErrNotOwner = errors.New("request belongs to another patient")

	// ErrMissingSymptom is returned for a blank symptom on creation.
	ErrMissingSymptom = errors.New("enter main symptom")

	// ErrBadAnswers is returned when the answer sequence is incomplete.
	ErrBadAnswers = errors.New("one answer per question is required")

	// ErrNotCancellable is returned when cancelling a request that is no
	// longer pending. Confirmed and rejected requests stay on record.
	ErrNotCancellable = errors.New("only pending requests can be cancelled")

	// ErrNotPending is returned when accepting or rejecting a request
	// another doctor already decided.
	ErrNotPending = errors.New("request is no longer pending")

	// ErrSpecialtyMismatch is returned when the acting doctor's specialty
	// does not match the request's suggestion.
	ErrSpecialtyMismatch = errors.New("request is for a different specialty")

	// ErrBadChoice is returned for an unknown acceptance method.
	ErrBadChoice = errors.New("acceptance method must be next_slot or window")

	// ErrBadMode is returned for an unknown consultation mode.
	ErrBadMode = errors.New("mode must be video or in_person")
)
