package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveStageDuration("materialize", 150*time.Millisecond)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncStageResult("materialize", ResultSuccess)
	pr.IncBuildOutcome(BuildOutcomeSuccess)
	pr.AddEntries("wrap", 3)
	pr.AddEntries("wrap", 0)
	pr.AddSynthesizedIndexes(2)
	pr.SetSidebarEntries(7)
	pr.IncRebuild(TriggerWatch)

	assert.InDelta(t, 1, testutil.ToFloat64(pr.stageResults.WithLabelValues("materialize", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.buildOutcome.WithLabelValues("success")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(pr.entries.WithLabelValues("wrap")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(pr.synthesized), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(pr.sidebar), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.rebuilds.WithLabelValues("watch")), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveBuildDuration(time.Second)
		pr.IncBuildOutcome(BuildOutcomeFailed)
		pr.AddEntries("copy", 1)
		pr.SetSidebarEntries(1)
	})
}

func TestHTTPHandlerServesRegistry(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncBuildOutcome(BuildOutcomeSuccess)

	srv := httptest.NewServer(HTTPHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `docsite_build_outcomes_total{outcome="success"} 1`)
}

var _ Recorder = NoopRecorder{}
var _ Recorder = (*PrometheusRecorder)(nil)

func TestNewRegistryIncludesRuntimeCollectors(t *testing.T) {
	mfs, err := NewRegistry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(mfs))
	for _, mf := range mfs {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}
