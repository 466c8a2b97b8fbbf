package sink

import (
	"context"
	"log/slog"
)

// LogSink writes events using slog.
type LogSink struct {
	Logger *slog.Logger
}

// NewLogSink creates a sink that logs to the given logger.
// If logger is nil, uses the default slog logger.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{Logger: logger}
}

// Deliver implements Sink.
func (s *LogSink) Deliver(ctx context.Context, event Event) error {
	level := slog.LevelInfo
	switch event.Severity {
	case SeverityDebug:
		level = slog.LevelDebug
	case SeverityWarning:
		level = slog.LevelWarn
	case SeverityError:
		level = slog.LevelError
	}

	s.Logger.Log(ctx, level, "notification",
		"channel", event.Channel,
		"status", event.Status,
		"payload", event.Payload,
	)
	return nil
}
