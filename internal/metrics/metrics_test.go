package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordTicketsBooked(t *testing.T) {
	before := testutil.ToFloat64(ticketsBooked.WithLabelValues("vip"))

	RecordTicketsBooked("vip", 3)

	assert.Equal(t, before+3, testutil.ToFloat64(ticketsBooked.WithLabelValues("vip")))
}

func TestRecordBookingRejected(t *testing.T) {
	before := testutil.ToFloat64(bookingsRejected.WithLabelValues("capacity_exceeded"))

	RecordBookingRejected("capacity_exceeded")

	assert.Equal(t, before+1, testutil.ToFloat64(bookingsRejected.WithLabelValues("capacity_exceeded")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordHTTPRequest(http.MethodGet, "/api/events", http.StatusOK, 10*time.Millisecond)
	RecordEventsExpired(1)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
	assert.Contains(t, w.Body.String(), "events_expired_total")
}
