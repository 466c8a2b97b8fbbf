// Package custom provides notification channels over a caller-declared set
// of states.
//
// A state type is any string type. The declared list passed to New drives
// typing only, unless the channel is built WithStrictStates, in which case
// messages carrying an undeclared status are dropped.
//
//	type Load string
//
//	const (
//	    Loading   Load = "LOADING"
//	    Failed    Load = "ERROR"
//	    Completed Load = "COMPLETED"
//	)
//
//	ch := custom.New[Load, string]([]Load{Loading, Failed, Completed})
//	ch.Subscribe(custom.Callbacks[Load, string]{
//	    On: map[Load]custom.Handler[Load, string]{
//	        Loading: func(m custom.Message[Load, string]) { fmt.Println("loading", m.Data) },
//	    },
//	})
//	ch.Notify(custom.NewMessage(Loading, "fetching"))
//
// Dispatch runs the Notify hook first, then looks the status up in On. A
// status with no entry reaches Notify only.
package custom
