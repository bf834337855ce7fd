// Package retry wraps fallible external calls with bounded attempts and
// exponential backoff.
//
// Page fetches, selector lookups, and store commits all share transient
// failure characteristics, so they run through the same policy: attempt,
// wait base*2^(n-1) between failures, and surface the final error
// unmodified once attempts are exhausted. An optional observer is invoked
// before each wait for logging.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultAttempts is the total number of tries, including the first.
	DefaultAttempts = 3
	// DefaultBaseDelay is the wait after the first failure; each further
	// wait doubles it.
	DefaultBaseDelay = 500 * time.Millisecond
)

// Config bounds a retried operation.
type Config struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultConfig returns the standard policy of 3 attempts at a 500ms base.
func DefaultConfig() Config {
	return Config{Attempts: DefaultAttempts, BaseDelay: DefaultBaseDelay}
}

// Notify observes a failed attempt before the backoff wait. attempt is
// 1-based; delay is the wait about to be taken.
type Notify func(attempt int, err error, delay time.Duration)

// Do runs op up to cfg.Attempts times. The waits between failures follow
// deterministic exponential backoff without jitter. The error from the last
// attempt is returned as-is; nothing is wrapped or swallowed. Context
// cancellation cuts the backoff wait short and returns the context error.
func Do(ctx context.Context, cfg Config, op func() error, notify Notify) error {
	if cfg.Attempts < 1 {
		cfg.Attempts = DefaultAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = cfg.BaseDelay
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxInterval = time.Hour // effectively uncapped per-wait
	exp.MaxElapsedTime = 0      // bounded by attempts, not wall clock
	exp.Reset()

	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(cfg.Attempts-1)), ctx)

	attempt := 0
	wrapped := func() error {
		attempt++
		return op()
	}

	observer := func(err error, delay time.Duration) {
		if notify != nil {
			notify(attempt, err, delay)
		}
	}

	return backoff.RetryNotify(wrapped, policy, observer)
}
