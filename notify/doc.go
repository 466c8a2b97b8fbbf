// Package notify provides fixed-state notification channels.
//
// Every message carries one of four statuses: StatusSuccess, StatusFailure,
// StatusInProgress or StatusIdle. Subscribers register a Callbacks table;
// on each message the Notify hook runs first, then the hook for the
// message's status. Both run synchronously before Notify returns to the
// producer. Missing hooks are skipped.
//
// # Single channel
//
//	type Task struct{ TaskID string }
//
//	tasks := notify.New[Task]()
//	sub := tasks.Observe(notify.Callbacks[Task]{
//	    InProgress: func(m notify.Message[Task]) { fmt.Println("running", m.Data.TaskID) },
//	    Success:    func(m notify.Message[Task]) { fmt.Println("done", m.Data.TaskID) },
//	}).Subscribe()
//	defer sub.Unsubscribe()
//
//	tasks.Notify(notify.InProgress(Task{TaskID: "123"}))
//	tasks.Notify(notify.Success(Task{TaskID: "123"}))
//
// # Groups
//
//	g, err := notify.NewGroup[string, Task]([]string{"taskNotifier", "userNotifier"})
//	g.MustGet("taskNotifier").Notify(notify.Idle(Task{}))
//
// Members of a group are independent channels named after their key.
//
// # Factory and predicates
//
// Success, Failure, InProgress and Idle stamp a status onto a payload.
// IsSuccess, IsFailure, IsInProgress and IsIdle classify a message.
package notify
