package sink

import (
	"context"
	"errors"
	"log/slog"
)

// =============================================================================
// MultiSink
// =============================================================================

// MultiSink delivers each event to several sinks.
type MultiSink struct {
	Sinks  []Sink
	Logger *slog.Logger
}

// NewMultiSink creates a sink that fans out to sinks in order.
// Errors from individual sinks are logged but don't stop the others.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{
		Sinks:  sinks,
		Logger: slog.Default(),
	}
}

// Deliver implements Sink. The returned error joins every failure.
func (s *MultiSink) Deliver(ctx context.Context, event Event) error {
	var errs []error
	for _, target := range s.Sinks {
		if err := target.Deliver(ctx, event); err != nil {
			errs = append(errs, err)
			if s.Logger != nil {
				s.Logger.Warn("sink failed",
					"error", err,
					"channel", event.Channel,
					"status", event.Status,
				)
			}
		}
	}
	return errors.Join(errs...)
}

// =============================================================================
// NopSink
// =============================================================================

// NopSink discards all events.
type NopSink struct{}

// Deliver implements Sink.
func (NopSink) Deliver(ctx context.Context, event Event) error {
	return nil
}
