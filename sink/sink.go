package sink

import (
	"context"
	"time"
)

// Severity constants. Forwarders map statuses onto these.
const (
	SeverityDebug   = "debug"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Event describes one forwarded message.
type Event struct {
	Channel   string    `json:"channel"`
	Status    string    `json:"status"`
	Severity  string    `json:"severity"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Sink receives forwarded events.
type Sink interface {
	// Deliver handles one event. It runs on the emitting goroutine, so
	// implementations should return quickly.
	Deliver(ctx context.Context, event Event) error
}

// Func adapts a function to Sink.
type Func func(ctx context.Context, event Event) error

// Deliver implements Sink.
func (f Func) Deliver(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// =============================================================================
// Context Injection
// =============================================================================

type sinkContextKey struct{}

// WithSink adds a Sink to the context.
func WithSink(ctx context.Context, s Sink) context.Context {
	return context.WithValue(ctx, sinkContextKey{}, s)
}

// FromContext extracts the Sink from context.
// Returns nil if none is configured.
func FromContext(ctx context.Context) Sink {
	if s, ok := ctx.Value(sinkContextKey{}).(Sink); ok {
		return s
	}
	return nil
}

// MustFromContext extracts the Sink or panics.
func MustFromContext(ctx context.Context) Sink {
	s := FromContext(ctx)
	if s == nil {
		panic("notifykit: Sink not found in context")
	}
	return s
}
