package obsadapters_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtflow/case-aggregate-go/eventstore/obsadapters"
)

func Test_PrometheusCollector_IncrementCounter(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := obsadapters.NewPrometheusCollector(registry)
	labels := map[string]string{"command_type": "RecordHearingResult", "outcome": "success"}

	// act
	collector.IncrementCounter("commandhandler_commands", labels)
	collector.IncrementCounter("commandhandler_commands", labels)

	// assert
	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "commandhandler_commands_total", families[0].GetName())
	assert.Equal(t, float64(2), testutil.ToFloat64(registry))
}

func Test_PrometheusCollector_RecordDuration(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := obsadapters.NewPrometheusCollector(registry)
	labels := map[string]string{"command_type": "EjectCase", "outcome": "success"}

	// act
	collector.RecordDuration("commandhandler_duration", 250*time.Millisecond, labels)
	collector.RecordDuration("commandhandler_duration", 50*time.Millisecond, labels)

	// assert
	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "commandhandler_duration_seconds", families[0].GetName())
	require.Len(t, families[0].GetMetric(), 1)
	assert.Equal(t, uint64(2), families[0].GetMetric()[0].GetHistogram().GetSampleCount())
}

func Test_PrometheusCollector_RecordValue(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := obsadapters.NewPrometheusCollector(registry)
	labels := map[string]string{"table": "case_events"}

	// act
	collector.RecordValue("eventstore_stream_length", 42, labels)
	collector.RecordValue("eventstore_stream_length", 7, labels)

	// assert
	assert.Equal(t, float64(7), testutil.ToFloat64(registry))
}

func Test_PrometheusCollector_ReusesCollectorsAcrossLabelValues(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := obsadapters.NewPrometheusCollector(registry)

	// act
	collector.IncrementCounter("commandhandler_commands", map[string]string{"command_type": "CreateForm", "outcome": "success"})
	collector.IncrementCounter("commandhandler_commands", map[string]string{"command_type": "CreateForm", "outcome": "ignored"})

	// assert
	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Len(t, families[0].GetMetric(), 2)
}
