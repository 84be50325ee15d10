package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/knobs/pkg/observability"
	"github.com/aretw0/knobs/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsOutcomes(t *testing.T) {
	promReg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(promReg)

	reg := registry.New(registry.WithHooks(metrics.Hooks()))
	require.NoError(t, reg.DefineNumeric("threshold", 0.5, 0, 1, 0.1))
	require.NoError(t, reg.DefineString("mode", "fast", []string{"fast", "accurate"}))

	reg.Apply([]string{"threshold=0.8", "threshold=5", "mode=turbo", "mode=accurate", "ghost=1", "junk"})

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Assignments.WithLabelValues("numeric", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Assignments.WithLabelValues("numeric", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Assignments.WithLabelValues("string", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Assignments.WithLabelValues("string", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Assignments.WithLabelValues("none", "unknown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Assignments.WithLabelValues("none", "malformed")))

	count, err := testutil.GatherAndCount(promReg, "knobs_assignments_total")
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	reg := registry.New(registry.WithHooks(observability.LogHooks(logger)))
	require.NoError(t, reg.DefineBool("verbose", false))

	reg.Set("verbose", "true")
	reg.Set("missing", "1")

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=assignment name=verbose kind=bool value=true outcome=applied")
	assert.Contains(t, out, "level=WARN msg=assignment name=missing")
	assert.Contains(t, out, "outcome=unknown")
}

func TestCombine(t *testing.T) {
	metrics := observability.NewMetrics(nil)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	reg := registry.New(registry.WithHooks(observability.Combine(
		metrics.Hooks(),
		observability.LogHooks(logger),
		observability.Combine(), // empty sets are tolerated
	)))
	require.NoError(t, reg.DefineBool("verbose", false))
	reg.Set("verbose", "1")

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Assignments.WithLabelValues("bool", "applied")))
	assert.Contains(t, buf.String(), "name=verbose")
}
