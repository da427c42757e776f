package primehash

import (
	"errors"
	"log"
)

const (
	// DefaultInitialCapacity is the bucket count of a table built without
	// WithInitialCapacity.
	DefaultInitialCapacity = 3

	// DefaultMaxCapacity bounds growth; a resize past it panics with
	// ErrCapacityExhausted.
	DefaultMaxCapacity = 1 << 30
)

// ErrCapacityExhausted is wrapped by the panic value raised when a table
// cannot grow any further.
var ErrCapacityExhausted = errors.New("primehash: capacity exhausted")

// Option configures a Table.
type Option func(*options)

type options struct {
	initialCapacity int
	maxCapacity     int
	logger          *log.Logger
}

func defaultOptions() *options {
	return &options{
		initialCapacity: DefaultInitialCapacity,
		maxCapacity:     DefaultMaxCapacity,
	}
}

// WithInitialCapacity sets the initial bucket-count hint. The hint is
// rounded up to the next prime; values below 2 keep the default.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n >= 2 {
			o.initialCapacity = n
		}
	}
}

// WithMaxCapacity caps the bucket count the table may grow to.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxCapacity = n
		}
	}
}

// WithLogger enables resize tracing on l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
