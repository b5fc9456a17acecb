package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	appointmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agenda_api",
			Name:      "appointments_created_total",
			Help:      "Count of appointments successfully booked.",
		},
	)

	timeConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agenda_api",
			Name:      "time_conflicts_total",
			Help:      "Count of bookings rejected because the slot was taken.",
		},
	)

	reportsServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agenda_api",
			Name:      "reports_served_total",
			Help:      "Count of period reports served, by source.",
		},
		[]string{"source"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(appointmentsCreated, timeConflicts, reportsServed)
	})
}

func IncAppointmentCreated() {
	appointmentsCreated.Inc()
}

func IncTimeConflict() {
	timeConflicts.Inc()
}

func IncReportServed(source string) {
	reportsServed.WithLabelValues(source).Inc()
}
