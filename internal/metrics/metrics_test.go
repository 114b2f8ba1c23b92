package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mieltoinc/yclistdedalus/internal/metrics"
)

func TestToolCall(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.ToolCall("yc_search_companies", "ok", 3*time.Millisecond, 12)
	m.ToolCall("yc_search_companies", "ok", time.Millisecond, 0)
	m.ToolCall("yc_get_company", "not_found", time.Millisecond, 0)

	assert.InDelta(t, 2, testutil.ToFloat64(m.ToolCalls.WithLabelValues("yc_search_companies", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ToolCalls.WithLabelValues("yc_get_company", "not_found")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.ToolDuration))
}

func TestSetDataset(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.SetDataset(4500, true)
	assert.InDelta(t, 4500, testutil.ToFloat64(m.DatasetCompanies), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.DatasetLoaded), 0)

	m.SetDataset(0, false)
	assert.InDelta(t, 0, testutil.ToFloat64(m.DatasetLoaded), 0)
}

func TestHTTPRequest(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.HTTPRequest(http.MethodPost, "/mcp", http.StatusOK, 10*time.Millisecond)

	expected := `
# HELP yclists_http_requests_total Total HTTP requests by method, route and status
# TYPE yclists_http_requests_total counter
yclists_http_requests_total{method="POST",route="/mcp",status="200"} 1
`
	require.NoError(t, testutil.CollectAndCompare(m.HTTPRequests, strings.NewReader(expected)))
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.ToolCall("yc_get_company_stats", "ok", time.Millisecond, 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `yclists_tool_calls_total{outcome="ok",tool="yc_get_company_stats"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	t.Parallel()

	a, b := metrics.New(), metrics.New()
	a.ToolCall("yc_get_all_companies", "ok", time.Millisecond, 1)
	assert.InDelta(t, 0, testutil.ToFloat64(b.ToolCalls.WithLabelValues("yc_get_all_companies", "ok")), 0)
}
