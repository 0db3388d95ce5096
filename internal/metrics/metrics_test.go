package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.IncrementRenders("svg")
	m.IncrementRenders("svg")
	m.IncrementRenders("json")
	m.IncrementLoadFailures()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RendersTotal.WithLabelValues("svg")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RendersTotal.WithLabelValues("json")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoadFailures))
}

func TestNewIsIndependent(t *testing.T) {
	a, b := New(), New()
	a.IncrementLoadFailures()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.LoadFailures))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.IncrementRenders("svg")
	m.ObserveRender(time.Now())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `rangeviewer_renders_total{format="svg"} 1`)
	assert.Contains(t, body, "rangeviewer_render_duration_seconds_count 1")
}
