package slots

import "time"

// Slot is one doctor-declared available instant. Slots are deleted on
// consumption or manual removal, never archived.
type Slot struct {
	ID             string    `json:"id"`
	DoctorUsername string    `json:"doctor_username"`
	At             time.Time `json:"at"`
	CreatedAt      time.Time `json:"created_at"`
}
