package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	ticketsBooked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_booked_total",
			Help: "Tickets booked, by tier",
		},
		[]string{"tier"},
	)

	ticketsReleased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_released_total",
			Help: "Tickets returned to inventory by order cancellation, by tier",
		},
		[]string{"tier"},
	)

	bookingsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_rejected_total",
			Help: "Booking attempts rejected, by reason",
		},
		[]string{"reason"},
	)

	panicsRecovered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Handler panics turned into 500 responses, by route",
		},
		[]string{"endpoint"},
	)

	eventsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "events_expired_total",
			Help: "Events moved to Inactive by the expiry sweep",
		},
	)
)

func RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordTicketsBooked(tier string, quantity int) {
	ticketsBooked.WithLabelValues(tier).Add(float64(quantity))
}

func RecordTicketsReleased(tier string, quantity int) {
	ticketsReleased.WithLabelValues(tier).Add(float64(quantity))
}

func RecordBookingRejected(reason string) {
	bookingsRejected.WithLabelValues(reason).Inc()
}

func RecordPanic(endpoint string) {
	panicsRecovered.WithLabelValues(endpoint).Inc()
}

func RecordEventsExpired(n int) {
	eventsExpired.Add(float64(n))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
