package identity

import "errors"

var (
	// ErrMissingFields is returned when a required signup field is blank.
	ErrMissingFields = errors.New("fill all required fields")

	// ErrUnknownRole is returned for a role outside patient/doctor.
	ErrUnknownRole = errors.New("unknown role")

	// ErrUsernameTaken is returned when the username already exists.
	ErrUsernameTaken = errors.New("username exists")

	// ErrInvalidCredentials is returned for any login failure. It is
	// deliberately generic: wrong password, unknown user, and role
	// mismatch all read the same to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a looked-up account does not exist.
	ErrUserNotFound = errors.New("user not found")
)
