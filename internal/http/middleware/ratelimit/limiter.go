package ratelimit

import "time"

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Clock returns the current time.
type Clock func() time.Time

// Unlimited lets every request through.
type Unlimited struct{}

// Allow always returns true.
func (Unlimited) Allow(string) bool { return true }
