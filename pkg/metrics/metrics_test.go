package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/cars", "/api/cars"},
		{"/api/cars/3f1c2a4e-8d0b-4c55-9a3e-2b8f4a6c7d10", "/api/cars/:id"},
		{"/api/cars/3f1c2a4e-8d0b-4c55-9a3e-2b8f4a6c7d10/related", "/api/cars/:id/related"},
		{"/api/cars/by-slug/toyota-supra", "/api/cars/by-slug/:slug"},
		{"/api/availability/42", "/api/availability/:id"},
		{"/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteLabel(tt.path))
		})
	}
}

func TestObserveHTTP(t *testing.T) {
	m := New("test")
	m.ObserveHTTP(http.MethodGet, "/api/cars/by-slug/a", http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/cars/by-slug/b", http.StatusOK, 10*time.Millisecond)

	got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/api/cars/by-slug/:slug", "200"))
	assert.Equal(t, float64(2), got)
}

func TestObserveCacheAndKafka(t *testing.T) {
	m := New("test")
	m.ObserveCache("cars", true, nil)
	m.ObserveCache("cars", false, nil)
	m.ObserveCache("cars", false, errors.New("down"))
	m.ObserveKafka("carhire.bookings", "publish", nil)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookups.WithLabelValues("cars", "hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookups.WithLabelValues("cars", "miss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookups.WithLabelValues("cars", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.KafkaMessages.WithLabelValues("carhire.bookings", "publish", "ok")))
}

func TestHandler_ExposesServiceLabel(t *testing.T) {
	m := New("cars")
	m.UploadedBytes.Add(1024)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `carhire_uploaded_bytes_total{service="cars"} 1024`), body)
}

func TestRegisterConsumerLag(t *testing.T) {
	m := New("booking-audit")
	var lag int64 = 7
	gauge := m.RegisterConsumerLag("carhire.bookings", "audit", func() int64 { return lag })

	assert.Equal(t, float64(7), testutil.ToFloat64(gauge))
	lag = 3
	assert.Equal(t, float64(3), testutil.ToFloat64(gauge))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `carhire_kafka_consumer_lag{group_id="audit",service="booking-audit",topic="carhire.bookings"} 3`)
}
