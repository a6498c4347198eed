package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.RecordAnalysis(10, 2, 4)
	m.RecordAnalysis(5, 0, 1)
	m.IncrCacheHit("history")
	m.IncrCacheHit("history")
	m.IncrCacheMiss("sales")
	m.IncrSourceError("sales")
	m.ObserveRequest(http.MethodGet, http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, float64(15), testutil.ToFloat64(m.eventsAnalyzed))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.eventsSkipped))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.returnsFound))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.cacheHits.WithLabelValues("history")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheMisses.WithLabelValues("sales")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.sourceErrors.WithLabelValues("sales")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "200")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveStage("load", time.Second)
		m.RecordAnalysis(1, 1, 1)
		m.IncrCacheHit("history")
		m.IncrCacheMiss("history")
		m.IncrSourceError("history")
		m.ObserveRequest(http.MethodGet, http.StatusOK, time.Second)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveStage("match", 150*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `return_analysis_duration_seconds_count{stage="match"} 1`)
}
