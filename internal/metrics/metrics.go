package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks figure renders and village loads served over HTTP.
type Metrics struct {
	RendersTotal   *prometheus.CounterVec
	RenderDuration prometheus.Histogram
	LoadFailures   prometheus.Counter

	registry *prometheus.Registry
}

// New creates a Metrics instance registered on its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		RendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rangeviewer_renders_total",
			Help: "Total number of figures rendered, by output format",
		}, []string{"format"}),
		RenderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rangeviewer_render_duration_seconds",
			Help:    "Duration of load, draw and encode for one figure",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		LoadFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "rangeviewer_load_failures_total",
			Help: "Total number of village files that failed to load or validate",
		}),
		registry: reg,
	}
}

// IncrementRenders records one rendered figure in the given format.
func (m *Metrics) IncrementRenders(format string) {
	m.RendersTotal.WithLabelValues(format).Inc()
}

// ObserveRender records the duration of a render.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveRender(start time.Time) {
	m.RenderDuration.Observe(time.Since(start).Seconds())
}

// IncrementLoadFailures records a village that could not be loaded.
func (m *Metrics) IncrementLoadFailures() {
	m.LoadFailures.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
