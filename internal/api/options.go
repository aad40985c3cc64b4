package api

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

const (
	// DefaultDelay is the simulated network latency of every stub call
	DefaultDelay = time.Second

	// DefaultFailureRate is the probability that GetProjects fails
	DefaultFailureRate = 0.05
)

// Option is a functional option for configuring a Stub
type Option func(*Stub)

// WithDelay sets the simulated latency. Zero or negative disables it.
func WithDelay(d time.Duration) Option {
	return func(s *Stub) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// WithFailureRate sets the probability in [0, 1] that a fetch fails.
// Values outside the range are clamped.
func WithFailureRate(rate float64) Option {
	return func(s *Stub) {
		s.failureRate = min(max(rate, 0), 1)
	}
}

// WithRand sets the random source used for failure injection
func WithRand(r *rand.Rand) Option {
	return func(s *Stub) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithIDGenerator sets the function producing IDs for new projects
func WithIDGenerator(gen func() string) Option {
	return func(s *Stub) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger for the stub
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stub) {
		if logger != nil {
			s.logger = logger
		}
	}
}
