// Package notifykit provides typed in-process notification channels.
//
// The package is organized into subpackages by domain:
//
//   - notify: Fixed-state channels (SUCCESS, FAILURE, IN_PROGRESS, IDLE), message factory, predicates
//   - custom: Channels over a caller-declared state set
//   - group: Keyed groups of independent channels with a duplicate-key policy
//   - broadcast: The multicast primitive shared by both channel flavors
//   - sink: Forwarding targets (structured log, fan-out, no-op)
//   - telemetry: OpenTelemetry counters for emits, handlers and subscriptions
//   - config: Layered settings resolution and group manifests
//   - hub: Named custom-state groups built from a manifest
//   - workflow: Lifecycle tracking for flowgraph nodes
//   - errors: Sentinel errors and predicates
//   - testutil: Test utilities and fixtures
//
// # Quick Start
//
//	import "github.com/randalmurphal/notifykit/notify"
//
//	tasks := notify.New[Task]()
//	sub := tasks.Subscribe(notify.Callbacks[Task]{
//	    Notify:  func(m notify.Message[Task]) { log.Println(m.Status) },
//	    Success: func(m notify.Message[Task]) { log.Println("done", m.Data.ID) },
//	})
//	defer sub.Unsubscribe()
//
//	tasks.Notify(notify.Success(Task{ID: "123"}))
//
// Handlers run synchronously on the emitting goroutine, Notify first, then
// the hook for the message's status. See individual package documentation
// for detailed usage.
package notifykit
