package scan

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// BackoffPolicy is the single retry policy shared by everything that talks
// to the node. Transient failures are retried up to MaxRetries with
// exponential delays; permanent failures never are.
type BackoffPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	MaxRetries      uint64
}

// DefaultBackoffPolicy returns the stock policy: 4 retries starting at
// 500ms, doubling, capped at 10s.
func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     10 * time.Second,
		Multiplier:      2,
		MaxRetries:      4,
	}
}

func (p BackoffPolicy) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval
	b.Multiplier = p.Multiplier
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, p.MaxRetries)
}
