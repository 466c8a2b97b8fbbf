package custom

import (
	"context"
	"time"

	"github.com/randalmurphal/notifykit/broadcast"
	"github.com/randalmurphal/notifykit/sink"
)

// Forward subscribes s to every message on c. Custom states carry no
// inherent severity, so severity maps each status to one; statuses it
// does not list are forwarded as sink.SeverityInfo. Delivery errors are
// logged at warn level.
func Forward[S ~string, T any](ctx context.Context, c *Channel[S, T], s sink.Sink, severity map[S]string) *broadcast.Subscription[Message[S, T]] {
	logger := c.subject.Config().Logger
	return c.Subscribe(Callbacks[S, T]{
		Notify: func(msg Message[S, T]) {
			sev, ok := severity[msg.Status]
			if !ok {
				sev = sink.SeverityInfo
			}
			event := sink.Event{
				Channel:   c.Name(),
				Status:    string(msg.Status),
				Severity:  sev,
				Payload:   msg.Data,
				Timestamp: time.Now(),
			}
			if err := s.Deliver(ctx, event); err != nil {
				logger.Warn("forward failed",
					"channel", c.Name(),
					"status", string(msg.Status),
					"error", err,
				)
			}
		},
	})
}
