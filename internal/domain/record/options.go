package record

import "time"

// Option configures a single parse.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used by time-relative rules.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Env is what a cross-field Rule may observe besides the record itself.
type Env struct {
	// Now is the instant the parse started.
	Now time.Time
}
