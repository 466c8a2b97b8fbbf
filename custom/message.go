package custom

// Message is an immutable status-tagged payload.
type Message[S ~string, T any] struct {
	Status S `json:"status"`
	Data   T `json:"data"`
}

// NewMessage stamps status onto data.
func NewMessage[S ~string, T any](status S, data T) Message[S, T] {
	return Message[S, T]{Status: status, Data: data}
}

// Handler receives one message.
type Handler[S ~string, T any] func(Message[S, T])

// Callbacks is the table a subscriber registers. Both fields are optional.
type Callbacks[S ~string, T any] struct {
	// Notify runs for every message, before any status hook.
	Notify Handler[S, T]

	// On maps a status to its hook.
	On map[S]Handler[S, T]
}

// Handler name reported to telemetry for the Notify hook. Status hooks are
// reported under their status.
const hookNotify = "notify"

// Dispatch routes msg through cb: Notify first, then cb.On[msg.Status] if
// present.
func Dispatch[S ~string, T any](cb Callbacks[S, T], msg Message[S, T]) {
	dispatch(cb, msg, func(string) {})
}

func dispatch[S ~string, T any](cb Callbacks[S, T], msg Message[S, T], invoked func(hook string)) {
	if cb.Notify != nil {
		invoked(hookNotify)
		cb.Notify(msg)
	}
	if h := cb.On[msg.Status]; h != nil {
		invoked(string(msg.Status))
		h(msg)
	}
}
