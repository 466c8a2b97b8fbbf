package notify

import (
	"github.com/randalmurphal/notifykit/group"
)

// NewGroup builds one independent channel per key, each named after its key.
func NewGroup[K comparable, T any](keys []K, opts ...group.Option) (group.Group[K, *Channel[T]], error) {
	o := group.NewOptions(opts...)
	return group.Build(keys, func(key K) *Channel[T] {
		return New[T](o.MemberOptions(key)...)
	}, opts...)
}
