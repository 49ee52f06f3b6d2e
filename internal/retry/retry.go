// Package retry wraps cenkalti/backoff with the transient-fault policy used
// for completion calls. This is deliberately separate from the single-attempt
// JSON repair loop in internal/services: the two retry different failure
// classes (transport faults vs. malformed content) for different reasons.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

// Policy bounds the sequential retry of a transient fault.
type Policy struct {
	MaxAttempts     int           `mapstructure:"max_attempts"`
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	Multiplier      float64       `mapstructure:"multiplier"`
}

// DefaultPolicy matches the documented defaults: 3 attempts, exponential
// backoff starting at 1s and capped at 10s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     3,
		InitialInterval: 1 * time.Second,
		MaxInterval:     10 * time.Second,
		Multiplier:      2.0,
	}
}

func (p Policy) backoff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.InitialInterval
	exp.MaxInterval = p.MaxInterval
	exp.Multiplier = p.Multiplier
	exp.MaxElapsedTime = 0

	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	var b backoff.BackOff = backoff.WithContext(exp, ctx)
	return backoff.WithMaxRetries(b, uint64(attempts-1))
}

// Do runs fn until it succeeds, the attempt budget is exhausted, or ctx is
// done. Waits between attempts are sequential; there are no concurrent
// retries. Wrap an error with backoff.Permanent to stop early.
func Do(ctx context.Context, policy Policy, fn func() error) error {
	notify := func(err error, next time.Duration) {
		log.WithError(err).Warnf("transient failure, retrying in %s", next)
	}
	return backoff.RetryNotify(fn, policy.backoff(ctx), notify)
}
