package appointments

import (
	"context"
	"fmt"

	"github.com/Simply-Coder-start/Medi-Triage/internal/store"
)

// Repository defines the interface for the appointment ledger.
type Repository interface {
	Insert(ctx context.Context, appt Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	FindByRequestID(ctx context.Context, requestID string) (*Appointment, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Appointment, error)
	ListForDoctor(ctx context.Context, doctorUsername string) ([]Appointment, error)
	ListForPatient(ctx context.Context, patientUsername string) ([]Appointment, error)
}

// RedisRepository keeps the whole ledger as one JSON blob.
type RedisRepository struct {
	store *store.Store
}

// NewRedisRepository creates a repository over the shared store.
func NewRedisRepository(s *store.Store) *RedisRepository {
	return &RedisRepository{store: s}
}

func (r *RedisRepository) load(ctx context.Context) ([]Appointment, error) {
	var all []Appointment
	if err := r.store.Load(ctx, store.KeyAppointments, &all); err != nil {
		return nil, fmt.Errorf("appointments: load: %w", err)
	}
	return all, nil
}

func (r *RedisRepository) save(ctx context.Context, all []Appointment) error {
	if err := r.store.Save(ctx, store.KeyAppointments, all); err != nil {
		return fmt.Errorf("appointments: save: %w", err)
	}
	return nil
}

// Insert appends to the ledger.
func (r *RedisRepository) Insert(ctx context.Context, appt Appointment) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(all, appt))
}

// GetByID returns one appointment.
func (r *RedisRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrAppointmentNotFound
}

// FindByRequestID returns the appointment recorded for a request, if any.
func (r *RedisRepository) FindByRequestID(ctx context.Context, requestID string) (*Appointment, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].RequestID == requestID {
			return &all[i], nil
		}
	}
	return nil, ErrAppointmentNotFound
}

// UpdateStatus rewrites the status field in place and returns the updated
// record. There is deliberately no transition guard.
func (r *RedisRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Appointment, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			all[i].Status = status
			if err := r.save(ctx, all); err != nil {
				return nil, err
			}
			return &all[i], nil
		}
	}
	return nil, ErrAppointmentNotFound
}

// ListForDoctor returns the doctor's appointments in ledger order.
func (r *RedisRepository) ListForDoctor(ctx context.Context, doctorUsername string) ([]Appointment, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Appointment, 0, len(all))
	for _, a := range all {
		if a.DoctorUsername == doctorUsername {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListForPatient returns the patient's appointments in ledger order.
func (r *RedisRepository) ListForPatient(ctx context.Context, patientUsername string) ([]Appointment, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Appointment, 0, len(all))
	for _, a := range all {
		if a.PatientUsername == patientUsername {
			out = append(out, a)
		}
	}
	return out, nil
}
