package triage

import (
	"context"
	"errors"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

// ErrPatientOnly is returned when a non-patient session touches the
// triage flow.
var ErrPatientOnly = errors.New("patient session required")

// Service runs the patient-facing triage flow: question bank, progress
// autosave, and the specialty classifier.
type Service struct {
	autosave *AutosaveStore
	logger   *logging.Logger
}

// NewService constructs a triage service.
func NewService(autosave *AutosaveStore, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{autosave: autosave, logger: logger}
}

// Questions returns the fixed form for a symptom.
func (s *Service) Questions(symptom string) ([]Question, error) {
	return Questions(symptom)
}

// SaveProgress stores the patient's partial form. Called on every recorded
// answer and on explicit save-and-exit, so interruption loses nothing.
func (s *Service) SaveProgress(ctx context.Context, sess session.Session, p Progress) error {
	if !sess.IsPatient() {
		return ErrPatientOnly
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.autosave.Save(ctx, sess.Username, p); err != nil {
		return err
	}
	s.logger.Debug("triage progress saved",
		"username", sess.Username,
		"current_question", p.CurrentQuestion,
	)
	return nil
}

// Resume restores the patient's saved form, exact position included.
func (s *Service) Resume(ctx context.Context, sess session.Session) (Progress, error) {
	if !sess.IsPatient() {
		return Progress{}, ErrPatientOnly
	}
	return s.autosave.Load(ctx, sess.Username)
}

// Discard drops the patient's saved form.
func (s *Service) Discard(ctx context.Context, sess session.Session) error {
	if !sess.IsPatient() {
		return ErrPatientOnly
	}
	return s.autosave.Clear(ctx, sess.Username)
}
