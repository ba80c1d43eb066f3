package slots

import "errors"

var (
	// ErrDoctorOnly is returned when a non-doctor session manages slots.
	ErrDoctorOnly = errors.New("doctor session required")

	// ErrSlotNotFound is returned when the slot id does not exist or
	// belongs to another doctor.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrNoSlots signals that a doctor has no declared availability; the
	// caller falls back to manual time entry.
	ErrNoSlots = errors.New("no slot available")

	// ErrMissingInstant is returned when the slot datetime is absent.
	ErrMissingInstant = errors.New("select datetime")
)

// Booking window validation failures, one sentinel per kind so each gets
// its own user-facing message. Checked in declaration order; the first
// failure wins.
var (
	ErrWindowIncomplete  = errors.New("please fill in all date/time fields")
	ErrWindowUnparseable = errors.New("invalid date/time format")
	ErrWindowZeroLength  = errors.New("start time equals end time")
	ErrWindowInverted    = errors.New("start time must be before end time")
	ErrWindowInPast      = errors.New("cannot book appointments in the past")
)
