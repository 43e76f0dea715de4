package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewCollection(t *testing.T) {
	metrics := NewCollection()
	require.NotNil(t, metrics)
}

func TestMustRegister(t *testing.T) {
	metrics := NewCollection()

	// counters with labels only appear in Gather output once used
	metrics.RunsTotal.WithLabelValues(RunResultProcessed).Inc()
	metrics.NodeEpoch.Set(450)
	metrics.LastReportedEpoch.Set(449)
	metrics.ReportTimestamp.SetToCurrentTime()
	metrics.ReportsTotal.Inc()

	registry := prometheus.NewRegistry()
	metrics.MustRegister(registry)

	// The expected number of metrics to be registered, based on the definitions provided in the Collection struct.
	expectedMetricsCount := 5

	var totalRegisteredMetrics int
	size, _ := registry.Gather()
	for _, item := range size {
		if strings.HasPrefix(*item.Name, "cardano_schedule_reporter") {
			totalRegisteredMetrics++
		}
	}

	require.NotNil(t, metrics)
	require.Equal(t, expectedMetricsCount, totalRegisteredMetrics)
}
