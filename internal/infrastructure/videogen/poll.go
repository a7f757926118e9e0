package videogen

import (
	"context"
	"time"
)

const (
	defaultPollInterval    = 2 * time.Second
	defaultPollMaxAttempts = 60
)

// PollPolicy controls the fixed-interval poll loop used by asynchronous job
// providers. Fixed interval, fixed attempt budget - no backoff. Tests inject
// a no-op Sleep to exercise timeout behavior without wall-clock waits.
type PollPolicy struct {
	Interval    time.Duration
	MaxAttempts int
	Sleep       func(ctx context.Context, d time.Duration) error
}

// DefaultPollPolicy returns the production policy: 2s interval, 60 attempts.
func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		Interval:    defaultPollInterval,
		MaxAttempts: defaultPollMaxAttempts,
		Sleep:       sleepContext,
	}
}

// normalized fills zero-valued fields with production defaults.
func (p PollPolicy) normalized() PollPolicy {
	if p.Interval <= 0 {
		p.Interval = defaultPollInterval
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultPollMaxAttempts
	}
	if p.Sleep == nil {
		p.Sleep = sleepContext
	}
	return p
}

// sleepContext blocks for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
