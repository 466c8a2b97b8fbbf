// Package telemetry records notifykit activity as OpenTelemetry metrics.
//
// A Recorder is built from a metric.Meter and handed to channels through
// broadcast.WithRecorder. A nil *Recorder is valid and records nothing, so
// channels built without one pay no cost.
//
//	reader := sdkmetric.NewManualReader()
//	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
//	rec, err := telemetry.NewRecorder(mp.Meter("notifykit"))
//	ch := notify.New[Task](broadcast.WithName("tasks"), broadcast.WithRecorder(rec))
//
// Instruments:
//   - notifykit.messages.emitted (counter): channel, status
//   - notifykit.handlers.invoked (counter): channel, status, handler
//   - notifykit.subscriptions.active (up-down counter): channel
package telemetry
