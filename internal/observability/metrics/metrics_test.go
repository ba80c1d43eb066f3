package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestSchedulingMetricsObserve(t *testing.T) {
	m := NewSchedulingMetrics(prometheus.NewRegistry())
	m.ObserveRequestCreated("Cardiology")
	m.ObserveRequestDecided("confirmed")
	m.ObserveBooking("local")
	m.ObserveAppointmentStatus("completed")
	m.ObserveRemoteLatency("error", 0.25)
}

func TestSchedulingMetricsNilSafe(t *testing.T) {
	var m *SchedulingMetrics
	m.ObserveRequestCreated("Cardiology")
	m.ObserveRequestDecided("rejected")
	m.ObserveBooking("remote")
	m.ObserveAppointmentStatus("cancelled")
	m.ObserveRemoteLatency("ok", 0.1)
}
