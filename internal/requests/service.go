package requests

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Simply-Coder-start/Medi-Triage/internal/appointments"
	"github.com/Simply-Coder-start/Medi-Triage/internal/events"
	"github.com/Simply-Coder-start/Medi-Triage/internal/identity"
	"github.com/Simply-Coder-start/Medi-Triage/internal/observability/metrics"
	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
	"github.com/Simply-Coder-start/Medi-Triage/internal/slots"
	"github.com/Simply-Coder-start/Medi-Triage/internal/triage"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

var requestsTracer = otel.Tracer("meditriage.internal.requests")

// defaultSlotLength is the appointment length assumed when acceptance
// consumes a single-instant slot.
const defaultSlotLength = 15 * time.Minute

// Directory resolves usernames to accounts; the doctor's specialty gates
// acceptance and the inbox.
type Directory interface {
	Get(ctx context.Context, username string) (*identity.User, error)
}

// SlotSource hands out the doctor's earliest declared availability.
type SlotSource interface {
	ConsumeEarliest(ctx context.Context, doctorUsername string) (*slots.Slot, error)
}

// Ledger records appointments on acceptance.
type Ledger interface {
	CreateLocal(ctx context.Context, p appointments.CreateParams) (*appointments.Appointment, error)
	Book(ctx context.Context, p appointments.CreateParams) (appointments.BookResult, error)
}

// ProgressStore clears a patient's triage autosave once the form turns
// into a filed request.
type ProgressStore interface {
	Clear(ctx context.Context, username string) error
}

// Service drives the consultation request lifecycle.
type Service struct {
	repo       Repository
	directory  Directory
	slots      SlotSource
	ledger     Ledger
	progress   ProgressStore
	bus        *events.Bus
	metrics    *metrics.SchedulingMetrics
	logger     *logging.Logger
	slotLength time.Duration
}

// NewService constructs a request lifecycle service. progress may be nil
// when no triage autosave is in play.
func NewService(repo Repository, directory Directory, slotSource SlotSource, ledger Ledger, progress ProgressStore, bus *events.Bus, m *metrics.SchedulingMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		repo:       repo,
		directory:  directory,
		slots:      slotSource,
		ledger:     ledger,
		progress:   progress,
		bus:        bus,
		metrics:    m,
		logger:     logger,
		slotLength: defaultSlotLength,
	}
}

// SetSlotLength overrides the assumed appointment length for slot-based
// acceptance.
func (s *Service) SetSlotLength(d time.Duration) {
	if d > 0 {
		s.slotLength = d
	}
}

// Create files a new pending request for the acting patient. The
// specialty suggestion is computed here, once, from the symptom text.
func (s *Service) Create(ctx context.Context, sess session.Session, symptom string, answers []string) (*Request, error) {
	ctx, span := requestsTracer.Start(ctx, "requests.create")
	defer span.End()

	if !sess.IsPatient() {
		return nil, ErrPatientOnly
	}
	symptom = strings.TrimSpace(symptom)
	if symptom == "" {
		return nil, ErrMissingSymptom
	}
	if len(answers) != triage.QuestionCount {
		return nil, ErrBadAnswers
	}
	for _, a := range answers {
		if strings.TrimSpace(a) == "" {
			return nil, ErrBadAnswers
		}
	}

	req := Request{
		ID:                 uuid.NewString(),
		PatientUsername:    sess.Username,
		Symptom:            symptom,
		Answers:            answers,
		SuggestedSpecialty: triage.ComputeSpecialty(symptom),
		Status:             StatusPending,
		CreatedAt:          time.Now().UTC(),
	}
	span.SetAttributes(attribute.String("meditriage.specialty", req.SuggestedSpecialty))

	if err := s.repo.InsertFront(ctx, req); err != nil {
		return nil, err
	}

	// The filed request supersedes any autosaved partial form.
	if s.progress != nil {
		if err := s.progress.Clear(ctx, sess.Username); err != nil {
			s.logger.Warn("clear triage autosave failed", "patient", sess.Username, "error", err)
		}
	}

	s.metrics.ObserveRequestCreated(req.SuggestedSpecialty)
	s.publish(events.RequestCreatedV1{
		EventID:         uuid.NewString(),
		RequestID:       req.ID,
		PatientUsername: req.PatientUsername,
		Specialty:       req.SuggestedSpecialty,
		OccurredAt:      time.Now().UTC(),
	})
	s.logger.Info("request created",
		"request_id", req.ID,
		"patient", req.PatientUsername,
		"specialty", req.SuggestedSpecialty,
	)
	return &req, nil
}

// Cancel deletes the patient's own pending request. Once a doctor has
// decided it, cancellation is refused.
func (s *Service) Cancel(ctx context.Context, sess session.Session, requestID string) error {
	if !sess.IsPatient() {
		return ErrPatientOnly
	}
	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.PatientUsername != sess.Username {
		return ErrNotOwner
	}
	if req.Status != StatusPending {
		return ErrNotCancellable
	}
	if err := s.repo.Delete(ctx, requestID); err != nil {
		return err
	}

	s.metrics.ObserveRequestDecided("cancelled")
	s.publish(events.RequestStatusChangedV1{
		EventID:         uuid.NewString(),
		RequestID:       requestID,
		PatientUsername: req.PatientUsername,
		Status:          "cancelled",
		OccurredAt:      time.Now().UTC(),
	})
	s.logger.Info("request cancelled", "request_id", requestID, "patient", sess.Username)
	return nil
}

// AcceptResult is the outcome of the single acceptance operation.
type AcceptResult struct {
	Request     *Request                  `json:"request"`
	Appointment *appointments.Appointment `json:"appointment"`
	Branch      appointments.Branch       `json:"branch"`
}

// Accept confirms a pending request for a doctor whose specialty matches
// its suggestion. The choice decides scheduling: consume the doctor's
// earliest slot, or book an explicit window through the remote endpoint
// with local fallback. Nothing locks a pending request while a doctor
// looks at it, so two doctors of the same specialty can race here; the
// second one loses with ErrNotPending.
func (s *Service) Accept(ctx context.Context, sess session.Session, requestID string, choice AcceptChoice) (*AcceptResult, error) {
	ctx, span := requestsTracer.Start(ctx, "requests.accept")
	defer span.End()
	span.SetAttributes(
		attribute.String("meditriage.request_id", requestID),
		attribute.String("meditriage.accept_method", string(choice.Method)),
	)

	req, doctor, err := s.decidable(ctx, sess, requestID)
	if err != nil {
		return nil, err
	}

	// An omitted mode is allowed (to be settled with the patient); an
	// unknown one never reaches the ledger.
	mode := appointments.Mode(choice.Mode)
	if mode != "" && !mode.Valid() {
		return nil, ErrBadMode
	}

	params := appointments.CreateParams{
		RequestID:       req.ID,
		DoctorUsername:  doctor.Username,
		PatientUsername: req.PatientUsername,
		Mode:            mode,
		Notes:           choice.Notes,
	}

	var appt *appointments.Appointment
	branch := appointments.BranchLocal

	switch choice.Method {
	case MethodNextSlot:
		slot, err := s.slots.ConsumeEarliest(ctx, doctor.Username)
		switch {
		case errors.Is(err, slots.ErrNoSlots):
			// No declared availability: the appointment is recorded with
			// no time, to be scheduled later.
		case err != nil:
			return nil, err
		default:
			start := slot.At
			end := start.Add(s.slotLength)
			params.StartTime = &start
			params.EndTime = &end
		}
		appt, err = s.ledger.CreateLocal(ctx, params)
		if err != nil {
			return nil, err
		}
	case MethodWindow:
		win, err := slots.ValidateWindow(time.Now(), choice.StartTime, choice.EndTime)
		if err != nil {
			return nil, err
		}
		params.StartTime = &win.Start
		params.EndTime = &win.End
		res, err := s.ledger.Book(ctx, params)
		if err != nil {
			return nil, err
		}
		appt = res.Appointment
		branch = res.Branch
	default:
		return nil, ErrBadChoice
	}

	updated, err := s.repo.UpdateStatus(ctx, req.ID, StatusConfirmed)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveRequestDecided("accepted")
	s.publish(events.RequestStatusChangedV1{
		EventID:         uuid.NewString(),
		RequestID:       req.ID,
		PatientUsername: req.PatientUsername,
		DoctorUsername:  doctor.Username,
		Status:          string(StatusConfirmed),
		OccurredAt:      time.Now().UTC(),
	})
	s.logger.Info("request accepted",
		"request_id", req.ID,
		"doctor", doctor.Username,
		"method", choice.Method,
		"branch", branch,
	)
	return &AcceptResult{Request: updated, Appointment: appt, Branch: branch}, nil
}

// Reject declines a pending request.
func (s *Service) Reject(ctx context.Context, sess session.Session, requestID string) (*Request, error) {
	req, doctor, err := s.decidable(ctx, sess, requestID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, req.ID, StatusRejected)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveRequestDecided("rejected")
	s.publish(events.RequestStatusChangedV1{
		EventID:         uuid.NewString(),
		RequestID:       req.ID,
		PatientUsername: req.PatientUsername,
		DoctorUsername:  doctor.Username,
		Status:          string(StatusRejected),
		OccurredAt:      time.Now().UTC(),
	})
	s.logger.Info("request rejected", "request_id", req.ID, "doctor", doctor.Username)
	return updated, nil
}

// decidable loads a request and checks the acting doctor may decide it:
// doctor session, matching specialty, request still pending.
func (s *Service) decidable(ctx context.Context, sess session.Session, requestID string) (*Request, *identity.User, error) {
	if !sess.IsDoctor() {
		return nil, nil, ErrDoctorOnly
	}
	doctor, err := s.directory.Get(ctx, sess.Username)
	if err != nil {
		return nil, nil, err
	}
	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if doctor.Specialty != req.SuggestedSpecialty {
		return nil, nil, ErrSpecialtyMismatch
	}
	if req.Status != StatusPending {
		return nil, nil, ErrNotPending
	}
	return req, doctor, nil
}

// ListForPatient returns the acting patient's requests, newest first.
func (s *Service) ListForPatient(ctx context.Context, sess session.Session) ([]Request, error) {
	if !sess.IsPatient() {
		return nil, ErrPatientOnly
	}
	return s.repo.ListForPatient(ctx, sess.Username)
}

// Inbox returns the acting doctor's incoming list: pending requests whose
// suggested specialty matches the doctor's.
func (s *Service) Inbox(ctx context.Context, sess session.Session) ([]Request, error) {
	if !sess.IsDoctor() {
		return nil, ErrDoctorOnly
	}
	doctor, err := s.directory.Get(ctx, sess.Username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListPendingBySpecialty(ctx, doctor.Specialty)
}

func (s *Service) publish(evt events.Event) {
	if s.bus != nil {
		s.bus.Publish(evt)
	}
}
