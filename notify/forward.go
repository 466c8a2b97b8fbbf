package notify

import (
	"context"
	"time"

	"github.com/randalmurphal/notifykit/broadcast"
	"github.com/randalmurphal/notifykit/sink"
)

// Forward subscribes s to every message on c. Delivery errors are logged
// at warn level and never reach the producer.
func Forward[T any](ctx context.Context, c *Channel[T], s sink.Sink) *broadcast.Subscription[Message[T]] {
	logger := c.subject.Config().Logger
	return c.Subscribe(Callbacks[T]{
		Notify: func(msg Message[T]) {
			event := sink.Event{
				Channel:   c.Name(),
				Status:    msg.Status.String(),
				Severity:  msg.Status.Severity(),
				Payload:   msg.Data,
				Timestamp: time.Now(),
			}
			if err := s.Deliver(ctx, event); err != nil {
				logger.Warn("forward failed",
					"channel", c.Name(),
					"status", msg.Status.String(),
					"error", err,
				)
			}
		},
	})
}
