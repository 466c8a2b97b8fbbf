package notify

import (
	"context"

	"github.com/google/uuid"

	"github.com/randalmurphal/notifykit/broadcast"
)

// Channel is a fixed-state notification stream.
type Channel[T any] struct {
	subject *broadcast.Subject[Message[T]]
}

// New creates an empty channel.
func New[T any](opts ...broadcast.Option) *Channel[T] {
	return &Channel[T]{subject: broadcast.New[Message[T]](opts...)}
}

// Notify delivers msg to every current subscriber and returns once all
// of their hooks have run. Called while another message on c is being
// delivered, Notify queues msg behind it and returns at once.
func (c *Channel[T]) Notify(msg Message[T]) {
	cfg := c.subject.Config()
	cfg.Recorder.Emitted(context.Background(), cfg.Name, msg.Status.String())
	c.subject.Emit(msg)
}

// Emit is an alias for Notify.
func (c *Channel[T]) Emit(msg Message[T]) {
	c.Notify(msg)
}

// Observe binds cb to the channel without subscribing. Nothing is
// delivered until Subscribe is called on the returned stream.
func (c *Channel[T]) Observe(cb Callbacks[T]) *broadcast.Stream[Message[T]] {
	cfg := c.subject.Config()
	return c.subject.Pipe(func(msg Message[T]) {
		dispatch(cb, msg, func(hook string) {
			cfg.Recorder.Invoked(context.Background(), cfg.Name, msg.Status.String(), hook)
		})
	})
}

// Subscribe is Observe(cb).Subscribe().
func (c *Channel[T]) Subscribe(cb Callbacks[T]) *broadcast.Subscription[Message[T]] {
	return c.Observe(cb).Subscribe()
}

// Name returns the channel name.
func (c *Channel[T]) Name() string {
	return c.subject.Name()
}

// ID returns the channel's unique identifier.
func (c *Channel[T]) ID() uuid.UUID {
	return c.subject.ID()
}

// Subscribers returns the number of active subscriptions.
func (c *Channel[T]) Subscribers() int {
	return c.subject.Len()
}
