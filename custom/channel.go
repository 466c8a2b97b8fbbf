package custom

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/randalmurphal/notifykit/broadcast"
	nkerrors "github.com/randalmurphal/notifykit/errors"
)

// Channel is a notification stream over the state set S.
type Channel[S ~string, T any] struct {
	subject *broadcast.Subject[Message[S, T]]

	// states is nil unless the channel is strict.
	states []S
}

// New creates an empty channel. states documents the declared state set;
// it is only retained and enforced under WithStrictStates.
func New[S ~string, T any](states []S, opts ...Option) *Channel[S, T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Channel[S, T]{subject: broadcast.New[Message[S, T]](o.broadcast...)}
	if o.strict {
		c.states = slices.Clone(states)
		if c.states == nil {
			c.states = []S{}
		}
	}
	return c
}

// Strict reports whether the channel enforces its declared states.
func (c *Channel[S, T]) Strict() bool {
	return c.states != nil
}

// States returns the retained state set, or nil when the channel is not
// strict.
func (c *Channel[S, T]) States() []S {
	return slices.Clone(c.states)
}

// Validate reports whether status may be emitted on the channel. Non-strict
// channels accept everything.
func (c *Channel[S, T]) Validate(status S) error {
	if c.states == nil || slices.Contains(c.states, status) {
		return nil
	}

	declared := make([]string, len(c.states))
	for i, s := range c.states {
		declared[i] = string(s)
	}
	return nkerrors.NewUndeclaredStatusError(string(status), declared)
}

// Notify delivers msg to every current subscriber and returns once all of
// their hooks have run. Called while another message on c is being
// delivered, Notify queues msg behind it and returns at once. A strict channel drops messages with an undeclared
// status.
func (c *Channel[S, T]) Notify(msg Message[S, T]) {
	cfg := c.subject.Config()
	if err := c.Validate(msg.Status); err != nil {
		cfg.Logger.Warn("dropping message",
			"channel", cfg.Name,
			"status", string(msg.Status),
			"error", err,
		)
		return
	}

	cfg.Recorder.Emitted(context.Background(), cfg.Name, string(msg.Status))
	c.subject.Emit(msg)
}

// Emit is an alias for Notify.
func (c *Channel[S, T]) Emit(msg Message[S, T]) {
	c.Notify(msg)
}

// Observe binds cb to the channel without subscribing. Nothing is
// delivered until Subscribe is called on the returned stream.
func (c *Channel[S, T]) Observe(cb Callbacks[S, T]) *broadcast.Stream[Message[S, T]] {
	cfg := c.subject.Config()
	return c.subject.Pipe(func(msg Message[S, T]) {
		dispatch(cb, msg, func(hook string) {
			cfg.Recorder.Invoked(context.Background(), cfg.Name, string(msg.Status), hook)
		})
	})
}

// Subscribe is Observe(cb).Subscribe().
func (c *Channel[S, T]) Subscribe(cb Callbacks[S, T]) *broadcast.Subscription[Message[S, T]] {
	return c.Observe(cb).Subscribe()
}

// Name returns the channel name.
func (c *Channel[S, T]) Name() string {
	return c.subject.Name()
}

// ID returns the channel's unique identifier.
func (c *Channel[S, T]) ID() uuid.UUID {
	return c.subject.ID()
}

// Subscribers returns the number of active subscriptions.
func (c *Channel[S, T]) Subscribers() int {
	return c.subject.Len()
}
