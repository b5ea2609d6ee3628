package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.NotNil(t, r.RunsTotal)
	assert.NotNil(t, r.NodeEvaluationDuration)
	assert.NotNil(t, r.PrometheusRegistry())
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestRecordRun(t *testing.T) {
	r := NewRegistry()
	r.RecordRun("completed", 20*time.Millisecond)
	r.RecordRun("completed", 10*time.Millisecond)
	r.RecordRun("failed", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("failed")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.RunDuration))
}

func TestNodeLifecycle(t *testing.T) {
	r := NewRegistry()
	r.RecordWave(2)
	r.NodeStarted()
	r.NodeStarted()
	assert.Equal(t, 2.0, testutil.ToFloat64(r.NodesInFlight))

	r.NodeFinished("arith.sqrt", "completed", time.Millisecond)
	r.NodeFinished("arith.sqrt", "failed", time.Millisecond)

	assert.Equal(t, 0.0, testutil.ToFloat64(r.NodesInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.WavesTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.NodeEvaluationsTotal.WithLabelValues("arith.sqrt", "failed")))
}

func TestStallsAndSkips(t *testing.T) {
	r := NewRegistry()
	r.RecordStall("cycle")
	r.RecordStall("cycle")
	r.RecordSkipped(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.NodesStalledTotal.WithLabelValues("cycle")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.NodesSkippedTotal))
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.RecordWave(1)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "wavegrid_waves_total 1"))
}
