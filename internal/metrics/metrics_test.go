package metrics

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

func TestMetrics_Observe(t *testing.T) {
	m := New()

	m.ObserveMemo("http", "high", 2*time.Millisecond)
	m.ObserveMemo("http", "high", time.Millisecond)
	m.ObserveMemo("mcp", "low", time.Millisecond)
	m.ObserveFailure("telegram", "not_found")
	m.SetBundles(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.memosTotal.WithLabelValues("http", "high")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.memosTotal.WithLabelValues("mcp", "low")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failureTotal.WithLabelValues("telegram", "not_found")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.bundles))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveMemo("cli", "medium", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `tuskmemo_memos_generated_total{confidence="medium",transport="cli"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveMemo("http", "high", time.Millisecond)
		m.ObserveFailure("http", "internal")
		m.SetBundles(1)
	})
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
