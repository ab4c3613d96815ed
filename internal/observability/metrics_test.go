package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := NewMetricsForTesting()

	m.ObserveRequest("GetModes.php", 120*time.Millisecond, nil)
	m.ObserveRequest("GetModes.php", 80*time.Millisecond, nil)
	m.ObserveRequest("GetLines.php", time.Second, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("GetModes.php", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("GetLines.php", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.UpstreamDuration))
}

func TestMetrics_CacheCollisionCard(t *testing.T) {
	m := NewMetricsForTesting()

	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObserveCache(false)
	m.ObserveCollision("modes")
	m.ObserveCard(nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CatalogCollision.WithLabelValues("modes")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CardRequests.WithLabelValues("success")))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GetModes.php", time.Second, nil)
		m.ObserveCache(true)
		m.ObserveCollision("modes")
		m.ObserveCard(errors.New("x"))
	})
	assert.Nil(t, m.Registry())
}

func TestNewMetrics_Registerer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.ObserveCollision("municipalities")

	count, err := testutil.GatherAndCount(reg, "crtm_catalog_collisions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Panics(t, func() { NewMetrics(reg) }, "second registration must panic")
}

func TestMetrics_Exposition(t *testing.T) {
	m := NewMetricsForTesting()
	m.ObserveCard(errors.New("fault"))

	expected := `
# HELP crtm_card_requests_total Card balance SOAP calls by outcome.
# TYPE crtm_card_requests_total counter
crtm_card_requests_total{outcome="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "crtm_card_requests_total"))
}

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
