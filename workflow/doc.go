// Package workflow reports flowgraph node lifecycles on notification
// channels.
//
// Track wraps a node so that each run emits IN_PROGRESS on entry, then
// SUCCESS or FAILURE with the elapsed time:
//
//	events := notify.New[workflow.NodeEvent](broadcast.WithName("pipeline"))
//	events.Subscribe(notify.Callbacks[workflow.NodeEvent]{
//	    Failure: func(m notify.Message[workflow.NodeEvent]) {
//	        slog.Error("node failed", "node", m.Data.Node, "error", m.Data.Err)
//	    },
//	})
//
//	graph := flowgraph.NewGraph[State]().
//	    AddNode("build", workflow.Track(events, "build", buildNode)).
//	    AddEdge("build", flowgraph.END).
//	    SetEntry("build")
package workflow
