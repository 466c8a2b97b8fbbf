package custom

import (
	"github.com/randalmurphal/notifykit/group"
)

// NewGroup builds one independent channel per key over the shared state
// set, each named after its key.
func NewGroup[K comparable, S ~string, T any](keys []K, states []S, opts ...group.Option) (group.Group[K, *Channel[S, T]], error) {
	return NewGroupWith[K, S, T](keys, states, opts)
}

// NewGroupWith is NewGroup with extra options applied to every member
// after the group's channel options, such as WithStrictStates.
func NewGroupWith[K comparable, S ~string, T any](keys []K, states []S, groupOpts []group.Option, extra ...Option) (group.Group[K, *Channel[S, T]], error) {
	o := group.NewOptions(groupOpts...)
	return group.Build(keys, func(key K) *Channel[S, T] {
		opts := append([]Option{WithBroadcast(o.MemberOptions(key)...)}, extra...)
		return New[S, T](states, opts...)
	}, groupOpts...)
}
