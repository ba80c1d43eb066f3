package triage

import "errors"

var (
	// ErrEmptySymptom is returned when the symptom text is blank.
	ErrEmptySymptom = errors.New("enter main symptom")

	// ErrUnanswered is returned when advancing past a question that has
	// no recorded answer. The caller shows it to the user; the form
	// never advances silently.
	ErrUnanswered = errors.New("please select an option")

	// ErrNoSavedProgress is returned when a resume finds no autosave.
	ErrNoSavedProgress = errors.New("no saved test")

	// ErrBadProgress is returned for an autosave payload whose shape does
	// not fit the fixed question bank.
	ErrBadProgress = errors.New("progress does not match the question set")
)
