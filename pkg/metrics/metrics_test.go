package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("availability", reg)

	m.ObserveHTTPRequest("GET", "/api/v1/professionals/{professionalId}/availability", 200, 15*time.Millisecond)
	m.ObserveDBQuery("bookings.occupancies", 2*time.Millisecond, nil)
	m.ObserveDBQuery("bookings.occupancies", 2*time.Millisecond, errors.New("boom"))
	m.SetDBStats(sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2})
	m.ObserveSlot("available")
	m.ObserveSlot("available")
	m.ObserveSlot("existing_booking")
	m.ObserveProfessional(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.slotsTotal.WithLabelValues("availability", "available")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotsTotal.WithLabelValues("availability", "existing_booking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("availability", "bookings.occupancies")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("availability", "idle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.professionalsTotal.WithLabelValues("availability", "true")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
	m.ObserveDBQuery("op", time.Millisecond, nil)
	m.SetDBStats(sql.DBStats{})
	m.ObserveSlot("available")
	m.ObserveProfessional(false)
}
