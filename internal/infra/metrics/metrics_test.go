//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"grooming-salon/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.HTTPRequests.WithLabelValues("GET", "/health", "200").Inc()
	m.RemindersSent.WithLabelValues("sms", "sent").Add(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RemindersSent.WithLabelValues("sms", "sent")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `grooming_salon_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "grooming_salon_reminders_sent_total")
}

func TestNew_IsolatedRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	a.HTTPRequests.WithLabelValues("GET", "/", "200").Inc()

	assert.Equal(t, 0.0, testutil.ToFloat64(b.HTTPRequests.WithLabelValues("GET", "/", "200")))
}
