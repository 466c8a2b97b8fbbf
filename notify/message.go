package notify

// Message is an immutable status-tagged payload.
type Message[T any] struct {
	Status Status `json:"status"`
	Data   T      `json:"data"`
}

// NewMessage stamps status onto data.
func NewMessage[T any](status Status, data T) Message[T] {
	return Message[T]{Status: status, Data: data}
}

// Success returns data tagged StatusSuccess.
func Success[T any](data T) Message[T] {
	return NewMessage(StatusSuccess, data)
}

// Failure returns data tagged StatusFailure.
func Failure[T any](data T) Message[T] {
	return NewMessage(StatusFailure, data)
}

// InProgress returns data tagged StatusInProgress.
func InProgress[T any](data T) Message[T] {
	return NewMessage(StatusInProgress, data)
}

// Idle returns data tagged StatusIdle.
func Idle[T any](data T) Message[T] {
	return NewMessage(StatusIdle, data)
}

// IsSuccess reports whether m carries StatusSuccess.
func IsSuccess[T any](m Message[T]) bool { return m.Status == StatusSuccess }

// IsFailure reports whether m carries StatusFailure.
func IsFailure[T any](m Message[T]) bool { return m.Status == StatusFailure }

// IsInProgress reports whether m carries StatusInProgress.
func IsInProgress[T any](m Message[T]) bool { return m.Status == StatusInProgress }

// IsIdle reports whether m carries StatusIdle.
func IsIdle[T any](m Message[T]) bool { return m.Status == StatusIdle }

// IsSuccess reports whether m carries StatusSuccess.
func (m Message[T]) IsSuccess() bool { return IsSuccess(m) }

// IsFailure reports whether m carries StatusFailure.
func (m Message[T]) IsFailure() bool { return IsFailure(m) }

// IsInProgress reports whether m carries StatusInProgress.
func (m Message[T]) IsInProgress() bool { return IsInProgress(m) }

// IsIdle reports whether m carries StatusIdle.
func (m Message[T]) IsIdle() bool { return IsIdle(m) }
