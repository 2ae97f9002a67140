package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tuskmemo"

// Metrics holds memo generation collectors on a private registry. A nil
// *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	memosTotal   *prometheus.CounterVec
	failureTotal *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	bundles      prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		memosTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memos_generated_total",
			Help:      "Memos generated by transport and confidence",
		}, []string{"transport", "confidence"}),
		failureTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memo_failures_total",
			Help:      "Memo requests that failed, by transport and reason",
		}, []string{"transport", "reason"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "memo_duration_seconds",
			Help:      "Time spent loading inputs and generating a memo",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"transport"}),
		bundles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bundles_available",
			Help:      "Bundles found at the last listing",
		}),
	}

	m.registry.MustRegister(
		m.memosTotal, m.failureTotal, m.duration, m.bundles,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveMemo(transport, confidence string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.memosTotal.WithLabelValues(transport, confidence).Inc()
	m.duration.WithLabelValues(transport).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveFailure(transport, reason string) {
	if m == nil {
		return
	}
	m.failureTotal.WithLabelValues(transport, reason).Inc()
}

func (m *Metrics) SetBundles(n int) {
	if m == nil {
		return
	}
	m.bundles.Set(float64(n))
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
