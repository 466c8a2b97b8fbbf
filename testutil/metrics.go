package testutil

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/randalmurphal/notifykit/telemetry"
)

// NewRecorder creates a telemetry.Recorder wired to an in-memory
// ManualReader so tests can inspect metric data without an exporter.
func NewRecorder(t *testing.T) (*telemetry.Recorder, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	rec, err := telemetry.NewRecorder(mp.Meter("notifykit-test"))
	if err != nil {
		t.Fatalf("failed to create recorder: %v", err)
	}

	return rec, reader
}

// SumInt64 collects reader and sums the data points of the named int64
// sum instrument whose attributes contain every pair in match.
// Returns 0 when the instrument has not recorded anything.
func SumInt64(t *testing.T, reader *sdkmetric.ManualReader, name string, match map[string]string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			data, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %s: expected Sum[int64], got %T", name, m.Data)
			}
			for _, dp := range data.DataPoints {
				if hasAttributes(dp.Attributes, match) {
					total += dp.Value
				}
			}
		}
	}

	return total
}

func hasAttributes(set attribute.Set, match map[string]string) bool {
	for k, want := range match {
		v, found := set.Value(attribute.Key(k))
		if !found || v.AsString() != want {
			return false
		}
	}
	return true
}
