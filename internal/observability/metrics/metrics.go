package metrics

import "github.com/prometheus/client_golang/prometheus"

// SchedulingMetrics exposes counters/histograms for the triage and
// booking flows. All observe methods are nil-safe so wiring stays
// optional in tests.
type SchedulingMetrics struct {
	requestsCreated  *prometheus.CounterVec
	requestsDecided  *prometheus.CounterVec
	bookingsTotal    *prometheus.CounterVec
	appointmentState *prometheus.CounterVec
	bookingLatency   *prometheus.HistogramVec
}

func NewSchedulingMetrics(reg prometheus.Registerer) *SchedulingMetrics {
	m := &SchedulingMetrics{
		requestsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meditriage",
			Subsystem: "requests",
			Name:      "created_total",
			Help:      "Consultation requests created, by suggested specialty",
		}, []string{"specialty"}),
		requestsDecided: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meditriage",
			Subsystem: "requests",
			Name:      "decided_total",
			Help:      "Doctor decisions on requests",
		}, []string{"decision"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meditriage",
			Subsystem: "bookings",
			Name:      "total",
			Help:      "Appointments booked, by branch (remote or local fallback)",
		}, []string{"branch"}),
		appointmentState: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meditriage",
			Subsystem: "appointments",
			Name:      "status_changes_total",
			Help:      "Appointment status transitions",
		}, []string{"status"}),
		bookingLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "meditriage",
			Subsystem: "bookings",
			Name:      "remote_latency_seconds",
			Help:      "Latency of the upstream booking call",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsCreated, m.requestsDecided, m.bookingsTotal, m.appointmentState, m.bookingLatency)
	return m
}

func (m *SchedulingMetrics) ObserveRequestCreated(specialty string) {
	if m == nil {
		return
	}
	m.requestsCreated.WithLabelValues(specialty).Inc()
}

func (m *SchedulingMetrics) ObserveRequestDecided(decision string) {
	if m == nil {
		return
	}
	m.requestsDecided.WithLabelValues(decision).Inc()
}

func (m *SchedulingMetrics) ObserveBooking(branch string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(branch).Inc()
}

func (m *SchedulingMetrics) ObserveAppointmentStatus(status string) {
	if m == nil {
		return
	}
	m.appointmentState.WithLabelValues(status).Inc()
}

func (m *SchedulingMetrics) ObserveRemoteLatency(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.bookingLatency.WithLabelValues(outcome).Observe(seconds)
}
