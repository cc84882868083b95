package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordTransition(t *testing.T) {
	m := New("banner-case-service")

	m.RecordTransition("approve", "ok")
	m.RecordTransition("approve", "ok")
	m.RecordTransition("approve", "rejected")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CaseTransitionsTotal.WithLabelValues("approve", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CaseTransitionsTotal.WithLabelValues("approve", "rejected")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordTransition("approve", "ok")
		m.RecordMaterialValidation(false)
		m.RecordBookingFetchFailure()
		m.ObserveHTTPRequest(http.MethodGet, "/cases", 200, time.Millisecond)
		m.ObserveDBQuery("query", time.Millisecond, errors.New("boom"))
	})
	assert.Nil(t, m.Registry())
}

func TestMetrics_Handler(t *testing.T) {
	m := New("banner-case-service")
	m.RecordMaterialValidation(false)
	m.ObserveHTTPRequest(http.MethodPost, "/api/v1/cases", http.StatusCreated, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `banner_case_service_material_validations_total{outcome="invalid"} 1`)
	assert.Contains(t, body, "banner_case_service_http_requests_total")
}
