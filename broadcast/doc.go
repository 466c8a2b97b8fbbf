// Package broadcast provides the multicast primitive that notifykit channels
// are built on.
//
// A Subject delivers every emitted value to the subscriptions attached at the
// moment of the emit, synchronously and in registration order. There is no buffer, no replay and no latest-value cache: a
// subscription only sees values emitted after it was created and before it
// was released.
//
//	s := broadcast.New[string](broadcast.WithName("tasks"))
//	sub := s.Subscribe(func(v string) { fmt.Println(v) })
//	s.Emit("hello") // prints before Emit returns
//	sub.Unsubscribe()
//
// Pipe returns a cold Stream: the callback is bound but nothing is attached
// until Stream.Subscribe is called, and every call attaches an independent
// subscription.
//
// # Thread Safety
//
// All operations are safe for concurrent use. Delivery is serialized per
// Subject: a callback never overlaps another callback of the same Subject,
// and every subscription sees values in the same order, even with several
// producers.
//
// An Emit made while another delivery is in progress, from a callback or from
// another goroutine, is queued and returns at once. The goroutine already
// delivering runs the queued values, in arrival order, before its own Emit
// returns. Callbacks may therefore subscribe, unsubscribe or emit on the same
// Subject without deadlocking.
//
// Once Unsubscribe returns, no further call to that callback is started.
package broadcast
