package testutil

import (
	"slices"
	"sync"
)

// CallLog records handler invocations in the order they happen.
// Safe for concurrent use.
type CallLog struct {
	mu      sync.Mutex
	entries []string
}

// Record appends name to the log.
func (l *CallLog) Record(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, name)
}

// Hook returns a func that records name each time it is called,
// ignoring its argument.
func Hook[T any](l *CallLog, name string) func(T) {
	return func(T) { l.Record(name) }
}

// Calls returns a copy of the recorded names.
func (l *CallLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries)
}

// Count returns how many times name was recorded.
func (l *CallLog) Count(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, e := range l.entries {
		if e == name {
			n++
		}
	}
	return n
}

// Reset clears the log.
func (l *CallLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
