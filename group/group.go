package group

import (
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"slices"

	"github.com/randalmurphal/notifykit/broadcast"
	nkerrors "github.com/randalmurphal/notifykit/errors"
)

// Policy decides what Build does with a repeated key.
type Policy int

const (
	// Reject fails the build on the first repeated key.
	Reject Policy = iota
	// KeepLast binds the key to the member built for its last occurrence.
	KeepLast
)

func (p Policy) String() string {
	switch p {
	case Reject:
		return "reject"
	case KeepLast:
		return "keep_last"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses the String form of a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "reject", "":
		return Reject, nil
	case "keep_last":
		return KeepLast, nil
	default:
		return Reject, fmt.Errorf("unknown duplicate key policy %q", s)
	}
}

// Options configures Build.
type Options struct {
	Policy Policy
	Logger *slog.Logger

	// ChannelOptions are applied to every member channel built by the
	// flavor NewGroup functions, after the per-key name.
	ChannelOptions []broadcast.Option
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{Policy: Reject, Logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures Options.
type Option func(*Options)

// WithPolicy sets the duplicate key policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithLogger sets the logger used for KeepLast warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// MemberOptions returns the channel options for the member under key: its
// name first, then ChannelOptions.
func (o Options) MemberOptions(key any) []broadcast.Option {
	opts := make([]broadcast.Option, 0, len(o.ChannelOptions)+1)
	opts = append(opts, broadcast.WithName(fmt.Sprint(key)))
	return append(opts, o.ChannelOptions...)
}

// WithChannelOptions sets options for every member channel.
func WithChannelOptions(opts ...broadcast.Option) Option {
	return func(o *Options) { o.ChannelOptions = append(o.ChannelOptions, opts...) }
}

// Group is an immutable mapping from keys to members.
type Group[K comparable, C any] struct {
	keys    []K
	members map[K]C
}

// Build constructs one member per key with newMember.
func Build[K comparable, C any](keys []K, newMember func(K) C, opts ...Option) (Group[K, C], error) {
	o := NewOptions(opts...)

	members := make(map[K]C, len(keys))
	ordered := make([]K, 0, len(keys))

	for i, key := range keys {
		if _, exists := members[key]; exists {
			if o.Policy != KeepLast {
				return Group[K, C]{}, nkerrors.NewDuplicateKeyError(key, i)
			}
			o.Logger.Warn("duplicate group key, keeping last",
				"key", fmt.Sprint(key),
				"index", i,
			)
		} else {
			ordered = append(ordered, key)
		}
		members[key] = newMember(key)
	}

	return Group[K, C]{keys: ordered, members: members}, nil
}

// Get returns the member for key.
func (g Group[K, C]) Get(key K) (C, bool) {
	c, ok := g.members[key]
	return c, ok
}

// MustGet returns the member for key or panics.
func (g Group[K, C]) MustGet(key K) C {
	c, ok := g.members[key]
	if !ok {
		panic(nkerrors.NewNotFoundError(nkerrors.ErrChannelNotFound, fmt.Sprint(key)))
	}
	return c
}

// Keys returns the distinct keys in first-declaration order.
func (g Group[K, C]) Keys() []K {
	return slices.Clone(g.keys)
}

// Len returns the number of distinct keys.
func (g Group[K, C]) Len() int {
	return len(g.keys)
}

// All iterates members in key order.
func (g Group[K, C]) All() iter.Seq2[K, C] {
	return func(yield func(K, C) bool) {
		for _, k := range g.keys {
			if !yield(k, g.members[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the underlying mapping.
func (g Group[K, C]) Map() map[K]C {
	return maps.Clone(g.members)
}
