package custom

import "github.com/randalmurphal/notifykit/broadcast"

// Option configures a Channel.
type Option func(*options)

type options struct {
	strict    bool
	broadcast []broadcast.Option
}

// WithStrictStates retains the declared states and drops any message
// whose status is not among them.
func WithStrictStates() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithBroadcast passes options through to the underlying broadcast Subject.
func WithBroadcast(opts ...broadcast.Option) Option {
	return func(o *options) {
		o.broadcast = append(o.broadcast, opts...)
	}
}
