package slots

import "time"

// Window is a validated explicit booking window.
type Window struct {
	Start time.Time
	End   time.Time
}

// ValidateWindow parses and checks an explicit booking window: both
// instants present and RFC 3339, start strictly before end, start not
// before now.
func ValidateWindow(now time.Time, startStr, endStr string) (Window, error) {
	if startStr == "" || endStr == "" {
		return Window{}, ErrWindowIncomplete
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return Window{}, ErrWindowUnparseable
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return Window{}, ErrWindowUnparseable
	}

	if start.Equal(end) {
		return Window{}, ErrWindowZeroLength
	}
	if start.After(end) {
		return Window{}, ErrWindowInverted
	}
	if start.Before(now) {
		return Window{}, ErrWindowInPast
	}
	return Window{Start: start, End: end}, nil
}
