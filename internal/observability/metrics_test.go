package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

func TestResolutionCollectorCountsMatchTypes(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewResolutionCollector(reg)
	require.NoError(t, err)

	collector.ObserveResolution(types.MatchComplete, 4)
	collector.ObserveResolution(types.MatchComplete, 3)
	collector.ObserveResolution(types.MatchNone, 1)
	collector.ObserveFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.Resolutions.WithLabelValues("complete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Resolutions.WithLabelValues("none")))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.Resolutions.WithLabelValues("partial")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Errors))

	families, err := reg.Gather()
	require.NoError(t, err)
	var samples uint64
	for _, family := range families {
		if family.GetName() != "gadm_resolution_queries" {
			continue
		}
		for _, metric := range family.GetMetric() {
			samples += metric.GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(3), samples)
}

func TestResolutionCollectorToleratesReRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewResolutionCollector(reg)
	require.NoError(t, err)
	second, err := NewResolutionCollector(reg)
	require.NoError(t, err)

	first.ObserveResolution(types.MatchPartial, 2)
	second.ObserveResolution(types.MatchPartial, 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(first.Resolutions.WithLabelValues("partial")))
}

func TestResolutionCollectorWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewResolutionCollector(reg)
	require.NoError(t, err)
	collector.ObserveResolution(types.MatchComplete, 1)

	path := filepath.Join(t.TempDir(), "gadm.prom")
	require.NoError(t, collector.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gadm_resolutions_total{match_type="complete"} 1`)
}

func TestNilCollectorIsNoop(t *testing.T) {
	var collector *ResolutionCollector
	collector.ObserveResolution(types.MatchNone, 0)
	collector.ObserveFailure()
	assert.NoError(t, collector.WriteTextfile(filepath.Join(t.TempDir(), "unused.prom")))
}
