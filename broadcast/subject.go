package broadcast

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	nanoid "github.com/matoous/go-nanoid/v2"
)

// Subject multicasts values to its current subscriptions.
//
// Delivery is serialized per Subject: one goroutine at a time walks the
// queue of pending values, so a callback never runs concurrently with any
// other callback of the same Subject and every subscription sees values in
// the same order.
type Subject[T any] struct {
	id  uuid.UUID
	cfg Config

	// mu guards subs, queue, draining and every subscription's closed flag.
	// subs is never modified in place once published, so a snapshot stays
	// valid after mu is released.
	mu       sync.Mutex
	subs     []*Subscription[T]
	queue    []delivery[T]
	draining bool
}

// delivery is one emitted value and the subscriptions attached when it was
// emitted.
type delivery[T any] struct {
	value T
	subs  []*Subscription[T]
}

// New creates an empty Subject.
func New[T any](opts ...Option) *Subject[T] {
	cfg := NewConfig(opts...)
	id := uuid.New()
	if cfg.Name == "" {
		cfg.Name = id.String()
	}
	return &Subject[T]{id: id, cfg: cfg}
}

// ID returns the Subject's unique identifier.
func (s *Subject[T]) ID() uuid.UUID {
	return s.id
}

// Name returns the configured name.
func (s *Subject[T]) Name() string {
	return s.cfg.Name
}

// Config returns the settings the Subject was built with.
func (s *Subject[T]) Config() Config {
	return s.cfg
}

// Len returns the number of active subscriptions.
func (s *Subject[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Subscribe attaches fn and returns the handle that releases it.
// A nil fn yields a subscription that receives nothing.
func (s *Subject[T]) Subscribe(fn func(T)) *Subscription[T] {
	if fn == nil {
		fn = func(T) {}
	}

	sub := &Subscription[T]{
		id:      nanoid.Must(),
		subject: s,
		fn:      fn,
	}

	s.mu.Lock()
	s.subs = append(slices.Clip(s.subs), sub)
	s.mu.Unlock()

	s.cfg.Logger.Debug("subscribed",
		"channel", s.cfg.Name,
		"subscription_id", sub.id,
	)
	s.cfg.Recorder.Subscribed(context.Background(), s.cfg.Name)

	return sub
}

// Pipe binds fn into a cold Stream without attaching it.
func (s *Subject[T]) Pipe(fn func(T)) *Stream[T] {
	return &Stream[T]{subject: s, fn: fn}
}

// Emit delivers v to every subscription attached when Emit was called, in
// registration order.
//
// If no delivery is in progress, Emit delivers v itself and returns once
// every callback has run, together with any value emitted meanwhile. If a
// delivery is already in progress, either because Emit was called from a
// callback or from another goroutine, v is queued behind it and Emit
// returns at once; the goroutine already delivering runs v's callbacks
// before its own Emit returns.
func (s *Subject[T]) Emit(v T) {
	s.mu.Lock()
	s.queue = append(s.queue, delivery[T]{value: v, subs: s.subs})
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()

	s.drain()
}

func (s *Subject[T]) drain() {
	done := false
	defer func() {
		// A callback panicked. Values still queued go out with the next Emit.
		if !done {
			s.mu.Lock()
			s.draining = false
			s.mu.Unlock()
		}
	}()

	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.draining = false
			s.mu.Unlock()
			done = true
			return
		}
		d := s.queue[0]
		s.queue[0] = delivery[T]{}
		s.queue = s.queue[1:]
		s.mu.Unlock()

		for _, sub := range d.subs {
			s.call(sub, d.value)
		}
	}
}

// call runs sub's callback unless it has been released. The check happens
// under mu, so it is ordered with respect to Unsubscribe.
func (s *Subject[T]) call(sub *Subscription[T], v T) {
	s.mu.Lock()
	closed := sub.closed
	s.mu.Unlock()

	if !closed {
		sub.fn(v)
	}
}

// Subscription is a caller-owned registration on a Subject.
type Subscription[T any] struct {
	id      string
	subject *Subject[T]
	fn      func(T)
	closed  bool
}

// ID returns the subscription's identifier.
func (s *Subscription[T]) ID() string {
	return s.id
}

// Closed reports whether Unsubscribe has been called.
func (s *Subscription[T]) Closed() bool {
	s.subject.mu.Lock()
	defer s.subject.mu.Unlock()
	return s.closed
}

// Unsubscribe detaches the callback. Once it returns, no delivery starts a
// call to the callback; a call already started, including the one
// Unsubscribe may be invoked from, runs to completion. Safe to call more
// than once.
func (s *Subscription[T]) Unsubscribe() {
	subj := s.subject

	subj.mu.Lock()
	if s.closed {
		subj.mu.Unlock()
		return
	}
	s.closed = true
	next := make([]*Subscription[T], 0, len(subj.subs))
	for _, sub := range subj.subs {
		if sub != s {
			next = append(next, sub)
		}
	}
	subj.subs = next
	subj.mu.Unlock()

	subj.cfg.Logger.Debug("unsubscribed",
		"channel", subj.cfg.Name,
		"subscription_id", s.id,
	)
	subj.cfg.Recorder.Unsubscribed(context.Background(), subj.cfg.Name)
}

// Stream is a callback bound to a Subject but not yet attached.
type Stream[T any] struct {
	subject *Subject[T]
	fn      func(T)
}

// Subscribe attaches the stream's callback. Each call creates an
// independent subscription.
func (st *Stream[T]) Subscribe() *Subscription[T] {
	return st.subject.Subscribe(st.fn)
}
