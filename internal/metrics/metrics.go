package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "parksmart",
			Name:      "bookings_total",
			Help:      "Booking attempts by terminal status.",
		},
		[]string{"status"},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "parksmart",
			Name:      "notifications_total",
			Help:      "Notification dispatches by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookings, notifications)
	})
}

// IncBooking counts a booking attempt reaching a terminal status.
func IncBooking(status string) {
	bookings.WithLabelValues(status).Inc()
}

// IncNotification counts a dispatch outcome.
func IncNotification(outcome string) {
	notifications.WithLabelValues(outcome).Inc()
}
