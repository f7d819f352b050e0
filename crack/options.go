package crack

import (
	"github.com/rs/zerolog"
	"go.uber.org/ratelimit"
)

type options struct {
	workers  int
	limiter  ratelimit.Limiter
	observer Observer
	log      zerolog.Logger
}

func defaultOptions() options {
	return options{
		workers:  1,
		observer: NopObserver{},
		log:      zerolog.Nop(),
	}
}

// Option configures an [Engine] or a [Coordinator].
type Option func(*options)

// WithWorkers splits each length across n goroutines, one first character at
// a time. Values below 1 are treated as 1. The result is identical to a
// single-worker search.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithLimiter throttles candidate evaluations; one Take per candidate.
// A nil limiter disables throttling.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(o *options) { o.limiter = l }
}

// WithObserver registers progress callbacks. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}
