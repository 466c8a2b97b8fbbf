// Package sink forwards channel traffic to out-of-band observers.
//
// Core types:
//   - Sink: interface for receiving forwarded messages
//   - Event: a flattened, flavor-independent view of one message
//
// Implementations:
//   - LogSink: writes events through slog, level chosen by severity
//   - MultiSink: fans out to several sinks
//   - NopSink: discards events
//   - Func: adapts a plain function
//
// Channels attach a sink with notify.Forward or custom.Forward:
//
//	sub := notify.Forward(ctx, tasks, sink.NewLogSink(logger))
//	defer sub.Unsubscribe()
package sink
