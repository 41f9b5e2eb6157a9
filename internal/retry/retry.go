// Package retry runs an operation with capped exponential backoff.
package retry

import (
	"context"
	"errors"
	"time"

	"service-dispatch/internal/logx"
)

type counter interface {
	Inc()
}

// Config describes how many times and how often an operation is retried.
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// PermanentError marks a failure that must not be retried.
type PermanentError struct {
	Err error
}

func (e PermanentError) Error() string {
	if e.Err == nil {
		return "permanent error"
	}
	return e.Err.Error()
}

func (e PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err so that Do gives up immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return PermanentError{Err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var pe PermanentError
	return errors.As(err, &pe)
}

// Retrier retries failed operations and counts every retry.
type Retrier struct {
	cfg     Config
	logger  logx.Logger
	retries counter
	sleep   func(context.Context, time.Duration) bool
}

// New creates a Retrier. MaxAttempts below 1 means a single attempt.
func New(cfg Config, logger logx.Logger, retries counter) *Retrier {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Retrier{cfg: cfg, logger: logger, retries: retries, sleep: sleepWithContext}
}

// Do calls fn until it succeeds, returns a permanent error, the context is
// done or the attempts are exhausted. The last error is returned.
func (r *Retrier) Do(ctx context.Context, op string, fn func(context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == r.cfg.MaxAttempts || IsPermanent(err) {
			break
		}

		delay := Backoff(r.cfg.BaseDelay, r.cfg.MaxDelay, attempt)
		if r.retries != nil {
			r.retries.Inc()
		}
		r.logger.Warn("operation retry",
			logx.String("op", op),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !r.sleep(ctx, delay) {
			break
		}
	}
	return lastErr
}

// Backoff returns base doubled per attempt, capped at maxDelay.
func Backoff(base, maxDelay time.Duration, attempt int) time.Duration {
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= maxDelay {
			return maxDelay
		}
	}
	if d > maxDelay {
		return maxDelay
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
