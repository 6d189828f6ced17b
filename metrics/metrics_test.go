package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/metrics"
)

// scrape renders the registry in text exposition format.
func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestMetrics_Observe(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveQuery("shortest", metrics.OutcomeOK, 3*time.Millisecond)
	m.ObserveQuery("shortest", metrics.OutcomeOK, time.Millisecond)
	m.ObserveQuery("shortest", metrics.OutcomeNoPath, time.Millisecond)
	m.SetGraphSize(8, 15)
	m.ObserveLoad(nil)
	m.ObserveLoad(errors.New("boom"))

	body := scrape(t, m)
	require.Contains(t, body, `campusnav_queries_total{op="shortest",outcome="ok"} 2`)
	require.Contains(t, body, `campusnav_queries_total{op="shortest",outcome="no_path"} 1`)
	require.Contains(t, body, `campusnav_query_duration_seconds_count{op="shortest"} 3`)
	require.Contains(t, body, "campusnav_graph_nodes 8")
	require.Contains(t, body, "campusnav_graph_edges 15")
	require.Contains(t, body, `campusnav_graph_loads_total{outcome="error"} 1`)
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.ObserveHTTP(http.MethodGet, "/shortest", http.StatusOK, 2*time.Millisecond)
	m.ObserveHTTP(http.MethodPost, "/shortest", http.StatusMethodNotAllowed, time.Millisecond)

	body := scrape(t, m)
	require.Contains(t, body, `campusnav_http_requests_total{method="GET",path="/shortest",status="200"} 1`)
	require.Contains(t, body, `campusnav_http_requests_total{method="POST",path="/shortest",status="405"} 1`)
	require.Contains(t, body, `campusnav_http_request_duration_seconds_count{method="GET",path="/shortest"} 1`)
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.ObserveQuery("longest", metrics.OutcomeOK, time.Second)
		m.SetGraphSize(1, 1)
		m.ObserveLoad(nil)
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Second)
	})
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	require.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
		metrics.New(nil)
	})
}
