package workflow

import (
	"time"

	"github.com/randalmurphal/flowgraph/pkg/flowgraph"

	"github.com/randalmurphal/notifykit/notify"
)

// NodeEvent describes one node run.
type NodeEvent struct {
	// Node is the tracked node's name.
	Node string `json:"node"`

	// Duration is zero on IN_PROGRESS and the run time otherwise.
	Duration time.Duration `json:"duration"`

	// Err is set on FAILURE.
	Err error `json:"-"`
}

// Track wraps node so that every run is reported on ch. The node's result
// and error are returned unchanged.
func Track[S any](ch *notify.Channel[NodeEvent], name string, node flowgraph.NodeFunc[S]) flowgraph.NodeFunc[S] {
	return func(ctx flowgraph.Context, state S) (S, error) {
		ch.Notify(notify.InProgress(NodeEvent{Node: name}))

		start := time.Now()
		result, err := node(ctx, state)
		event := NodeEvent{Node: name, Duration: time.Since(start)}

		if err != nil {
			event.Err = err
			ch.Notify(notify.Failure(event))
			return result, err
		}

		ch.Notify(notify.Success(event))
		return result, nil
	}
}

// Idle emits an IDLE event for name, marking a node that was skipped or has
// not been scheduled.
func Idle(ch *notify.Channel[NodeEvent], name string) {
	ch.Notify(notify.Idle(NodeEvent{Node: name}))
}
