package notify

// Handler receives one message.
type Handler[T any] func(Message[T])

// Callbacks is the table a subscriber registers. Every field is optional.
type Callbacks[T any] struct {
	// Notify runs for every message, before the status hook.
	Notify Handler[T]

	Success    Handler[T]
	Failure    Handler[T]
	InProgress Handler[T]
	Idle       Handler[T]
}

// Handler names reported to telemetry.
const (
	hookNotify     = "notify"
	hookSuccess    = "success"
	hookFailure    = "failure"
	hookInProgress = "in_progress"
	hookIdle       = "idle"
)

// Dispatch routes msg through cb: Notify first, then the hook matching
// msg.Status. A status outside the four known values only reaches Notify.
func Dispatch[T any](cb Callbacks[T], msg Message[T]) {
	dispatch(cb, msg, func(string) {})
}

func dispatch[T any](cb Callbacks[T], msg Message[T], invoked func(hook string)) {
	if cb.Notify != nil {
		invoked(hookNotify)
		cb.Notify(msg)
	}

	var (
		h    Handler[T]
		hook string
	)
	switch msg.Status {
	case StatusSuccess:
		h, hook = cb.Success, hookSuccess
	case StatusFailure:
		h, hook = cb.Failure, hookFailure
	case StatusInProgress:
		h, hook = cb.InProgress, hookInProgress
	case StatusIdle:
		h, hook = cb.Idle, hookIdle
	default:
		return
	}

	if h != nil {
		invoked(hook)
		h(msg)
	}
}
