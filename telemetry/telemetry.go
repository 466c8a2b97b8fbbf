package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrNilMeter indicates that a nil OTEL meter was provided.
var ErrNilMeter = errors.New("metric meter cannot be nil")

// Metric describes one instrument.
type Metric struct {
	Name        string
	Description string
	Unit        string
}

// Instruments created by NewRecorder.
var (
	MetricMessagesEmitted = Metric{
		Name:        "notifykit.messages.emitted",
		Unit:        "1",
		Description: "Number of messages emitted on a channel.",
	}

	MetricHandlersInvoked = Metric{
		Name:        "notifykit.handlers.invoked",
		Unit:        "1",
		Description: "Number of callback handlers invoked by dispatch.",
	}

	MetricSubscriptionsActive = Metric{
		Name:        "notifykit.subscriptions.active",
		Unit:        "1",
		Description: "Number of subscriptions currently attached to a channel.",
	}
)

// Attribute keys.
const (
	AttrChannel = "channel"
	AttrStatus  = "status"
	AttrHandler = "handler"
)

// Recorder holds the notifykit instruments. The zero value is not usable;
// a nil *Recorder is, and drops every measurement.
type Recorder struct {
	emitted metric.Int64Counter
	invoked metric.Int64Counter
	active  metric.Int64UpDownCounter
}

// NewRecorder creates the instruments on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	emitted, err := meter.Int64Counter(MetricMessagesEmitted.Name,
		metric.WithDescription(MetricMessagesEmitted.Description),
		metric.WithUnit(MetricMessagesEmitted.Unit),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", MetricMessagesEmitted.Name, err)
	}

	invoked, err := meter.Int64Counter(MetricHandlersInvoked.Name,
		metric.WithDescription(MetricHandlersInvoked.Description),
		metric.WithUnit(MetricHandlersInvoked.Unit),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", MetricHandlersInvoked.Name, err)
	}

	active, err := meter.Int64UpDownCounter(MetricSubscriptionsActive.Name,
		metric.WithDescription(MetricSubscriptionsActive.Description),
		metric.WithUnit(MetricSubscriptionsActive.Unit),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", MetricSubscriptionsActive.Name, err)
	}

	return &Recorder{emitted: emitted, invoked: invoked, active: active}, nil
}

// Emitted counts one message emitted on channel with status.
func (r *Recorder) Emitted(ctx context.Context, channel, status string) {
	if r == nil {
		return
	}
	r.emitted.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrChannel, channel),
		attribute.String(AttrStatus, status),
	))
}

// Invoked counts one handler call. handler is the callback table entry
// that ran ("notify" for the catch-all hook).
func (r *Recorder) Invoked(ctx context.Context, channel, status, handler string) {
	if r == nil {
		return
	}
	r.invoked.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrChannel, channel),
		attribute.String(AttrStatus, status),
		attribute.String(AttrHandler, handler),
	))
}

// Subscribed records a new subscription on channel.
func (r *Recorder) Subscribed(ctx context.Context, channel string) {
	if r == nil {
		return
	}
	r.active.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrChannel, channel)))
}

// Unsubscribed records a released subscription on channel.
func (r *Recorder) Unsubscribed(ctx context.Context, channel string) {
	if r == nil {
		return
	}
	r.active.Add(ctx, -1, metric.WithAttributes(attribute.String(AttrChannel, channel)))
}
