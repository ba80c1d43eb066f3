package slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

// Service manages doctor availability slots.
type Service struct {
	repo   Repository
	logger *logging.Logger
}

// NewService constructs a slot service.
func NewService(repo Repository, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Add declares a new availability instant for the acting doctor.
func (s *Service) Add(ctx context.Context, sess session.Session, at time.Time) (*Slot, error) {
	if !sess.IsDoctor() {
		return nil, ErrDoctorOnly
	}
	if at.IsZero() {
		return nil, ErrMissingInstant
	}

	slot := Slot{
		ID:             uuid.NewString(),
		DoctorUsername: sess.Username,
		At:             at.UTC(),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, slot); err != nil {
		return nil, err
	}
	s.logger.Info("slot added", "doctor", sess.Username, "at", slot.At)
	return &slot, nil
}

// Remove deletes one of the acting doctor's slots unconditionally.
func (s *Service) Remove(ctx context.Context, sess session.Session, slotID string) error {
	if !sess.IsDoctor() {
		return ErrDoctorOnly
	}
	removed, err := s.repo.Remove(ctx, slotID)
	if err != nil {
		return err
	}
	if removed.DoctorUsername != sess.Username {
		// Someone else's slot: put it back and report not found rather
		// than leaking its existence.
		if insertErr := s.repo.Insert(ctx, *removed); insertErr != nil {
			return insertErr
		}
		return ErrSlotNotFound
	}
	s.logger.Info("slot removed", "doctor", sess.Username, "slot_id", slotID)
	return nil
}

// List returns the acting doctor's slots in chronological order.
func (s *Service) List(ctx context.Context, sess session.Session) ([]Slot, error) {
	if !sess.IsDoctor() {
		return nil, ErrDoctorOnly
	}
	return s.repo.ListForDoctor(ctx, sess.Username)
}

// ConsumeEarliest removes and returns the doctor's earliest slot. Callers
// treat ErrNoSlots as "fall back to manual time entry".
func (s *Service) ConsumeEarliest(ctx context.Context, doctorUsername string) (*Slot, error) {
	slot, err := s.repo.PopEarliest(ctx, doctorUsername)
	if err != nil {
		return nil, err
	}
	s.logger.Info("slot consumed", "doctor", doctorUsername, "at", slot.At)
	return slot, nil
}
