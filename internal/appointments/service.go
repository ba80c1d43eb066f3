package appointments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Simply-Coder-start/Medi-Triage/internal/events"
	"github.com/Simply-Coder-start/Medi-Triage/internal/observability/metrics"
	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

var apptTracer = otel.Tracer("meditriage.internal.appointments")

// Service maintains the appointment ledger.
type Service struct {
	repo    Repository
	remote  RemoteBooker
	bus     *events.Bus
	metrics *metrics.SchedulingMetrics
	logger  *logging.Logger
}

// NewService constructs an appointments service. remote may be nil, in
// which case every booking settles locally.
func NewService(repo Repository, remote RemoteBooker, bus *events.Bus, m *metrics.SchedulingMetrics, logger *logging.Logger) *Service {
	if repo == nil {
		panic("appointments: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, remote: remote, bus: bus, metrics: m, logger: logger}
}

// CreateParams describe the appointment to record.
type CreateParams struct {
	RequestID       string
	DoctorUsername  string
	PatientUsername string
	StartTime       *time.Time
	EndTime         *time.Time
	Mode            Mode
	Notes           string
}

// CreateLocal records an appointment without touching the upstream
// endpoint (the slot-consumption path). If the request already has an
// appointment, the existing one is returned instead of a duplicate.
func (s *Service) CreateLocal(ctx context.Context, p CreateParams) (*Appointment, error) {
	existing, err := s.repo.FindByRequestID(ctx, p.RequestID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrAppointmentNotFound) {
		return nil, err
	}
	return s.record(ctx, p, "")
}

// Book settles an explicit-window booking: it tries the upstream endpoint
// first and falls back to local persistence on any failure. Both branches
// produce a confirmed local appointment; the branch taken is part of the
// result. A retry after the fallback already recorded the appointment
// returns it unchanged rather than duplicating it.
func (s *Service) Book(ctx context.Context, p CreateParams) (BookResult, error) {
	ctx, span := apptTracer.Start(ctx, "appointments.book")
	defer span.End()
	span.SetAttributes(attribute.String("meditriage.request_id", p.RequestID))

	existing, err := s.repo.FindByRequestID(ctx, p.RequestID)
	if err == nil {
		return BookResult{Appointment: existing, Branch: BranchLocal}, nil
	}
	if !errors.Is(err, ErrAppointmentNotFound) {
		span.RecordError(err)
		return BookResult{}, err
	}

	branch := BranchLocal
	remoteID := ""
	if s.remote != nil && p.StartTime != nil && p.EndTime != nil {
		start := time.Now()
		id, err := s.remote.Book(ctx, RemoteBookingRequest{
			RequestID: p.RequestID,
			DoctorID:  p.DoctorUsername,
			PatientID: p.PatientUsername,
			StartTime: *p.StartTime,
			EndTime:   *p.EndTime,
			Mode:      p.Mode,
			Notes:     p.Notes,
		})
		elapsed := time.Since(start).Seconds()
		if err != nil {
			// Any upstream failure routes through the same local path
			// as the no-backend case.
			s.metrics.ObserveRemoteLatency("error", elapsed)
			s.logger.Warn("remote booking failed, falling back to local",
				"request_id", p.RequestID,
				"error", err,
			)
		} else {
			s.metrics.ObserveRemoteLatency("ok", elapsed)
			branch = BranchRemote
			remoteID = id
		}
	}

	appt, err := s.record(ctx, p, remoteID)
	if err != nil {
		span.RecordError(err)
		return BookResult{}, err
	}
	s.metrics.ObserveBooking(string(branch))
	return BookResult{Appointment: appt, Branch: branch}, nil
}

func (s *Service) record(ctx context.Context, p CreateParams, remoteID string) (*Appointment, error) {
	id := remoteID
	if id == "" {
		id = uuid.NewString()
	}
	appt := Appointment{
		ID:              id,
		RequestID:       p.RequestID,
		DoctorUsername:  p.DoctorUsername,
		PatientUsername: p.PatientUsername,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		Mode:            p.Mode,
		Notes:           p.Notes,
		Status:          StatusConfirmed,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, appt); err != nil {
		return nil, err
	}

	s.publish(events.AppointmentCreatedV1{
		EventID:         uuid.NewString(),
		AppointmentID:   appt.ID,
		RequestID:       appt.RequestID,
		DoctorUsername:  appt.DoctorUsername,
		PatientUsername: appt.PatientUsername,
		StartTime:       appt.StartTime,
		OccurredAt:      time.Now().UTC(),
	})
	s.logger.Info("appointment recorded",
		"appointment_id", appt.ID,
		"request_id", appt.RequestID,
		"doctor", appt.DoctorUsername,
		"patient", appt.PatientUsername,
	)
	return &appt, nil
}

// UpdateStatus marks an appointment completed or cancelled. Only the
// appointment's doctor may do this; there is no transition guard beyond
// the target status whitelist.
func (s *Service) UpdateStatus(ctx context.Context, sess session.Session, id string, status Status) (*Appointment, error) {
	if !sess.IsDoctor() {
		return nil, ErrDoctorOnly
	}
	if status != StatusCompleted && status != StatusCancelled {
		return nil, ErrBadStatus
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.DoctorUsername != sess.Username {
		return nil, ErrNotParticipant
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveAppointmentStatus(string(status))
	s.publish(events.AppointmentStatusChangedV1{
		EventID:         uuid.NewString(),
		AppointmentID:   updated.ID,
		DoctorUsername:  updated.DoctorUsername,
		PatientUsername: updated.PatientUsername,
		Status:          string(status),
		OccurredAt:      time.Now().UTC(),
	})
	s.logger.Info("appointment status changed", "appointment_id", id, "status", status)
	return updated, nil
}

// ListFor returns the appointments visible to the session's role.
func (s *Service) ListFor(ctx context.Context, sess session.Session) ([]Appointment, error) {
	if sess.IsDoctor() {
		return s.repo.ListForDoctor(ctx, sess.Username)
	}
	return s.repo.ListForPatient(ctx, sess.Username)
}

// FindForRequest returns the appointment attached to a request, if any.
func (s *Service) FindForRequest(ctx context.Context, requestID string) (*Appointment, error) {
	return s.repo.FindByRequestID(ctx, requestID)
}

func (s *Service) publish(evt events.Event) {
	if s.bus != nil {
		s.bus.Publish(evt)
	}
}
