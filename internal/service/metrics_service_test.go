package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsServiceSnapshot(t *testing.T) {
	metrics := NewMetricsService()

	metrics.ObserveHTTPRequest(http.MethodPost, "/employees", http.StatusBadRequest, 10*time.Millisecond)
	metrics.ObserveValidation("dto.CreateEmployeeRequest", "invalid", time.Millisecond)
	metrics.ObserveValidation("dto.UpdateEmployeeRequest", "error", time.Millisecond)
	metrics.ObserveValidation("dto.UpdateEmployeeRequest", "valid", time.Millisecond)
	metrics.ObserveDBQuery("unit_of_work_commit", 4*time.Millisecond)
	metrics.ObserveAuditStamps(2, 1)

	snapshot := metrics.Snapshot()
	assert.Equal(t, uint64(1), snapshot.RequestsTotal)
	assert.InDelta(t, 10.0, snapshot.AverageRequestDurationMs, 0.001)
	assert.Equal(t, uint64(3), snapshot.ValidationsTotal)
	assert.Equal(t, uint64(1), snapshot.ValidationFailures)
	assert.Equal(t, uint64(1), snapshot.ValidationErrors)
	assert.Equal(t, uint64(1), snapshot.CommitsTotal)
	assert.Equal(t, uint64(2), snapshot.AuditCreated)
	assert.Equal(t, uint64(1), snapshot.AuditModified)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `audit_stamps_total{kind="created"} 2`)
	assert.Contains(t, rec.Body.String(), `request_validations_total{payload="dto.CreateEmployeeRequest",result="invalid"} 1`)
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var metrics *MetricsService
	metrics.ObserveValidation("x", "valid", time.Millisecond)
	metrics.ObserveAuditStamps(1, 1)
	assert.Equal(t, MetricsSnapshot{}, metrics.Snapshot())

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
