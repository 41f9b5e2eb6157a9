package ratelimit

import (
	"sync"
	"time"
)

// Config stores TokenBucket settings.
type Config struct {
	Rate       float64       // tokens refilled per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets are evicted after TTL, 0 keeps them
	MaxBuckets int           // 0 means unbounded
}

// TokenBucket keeps one bucket per key behind a single lock.
type TokenBucket struct {
	cfg   Config
	now   Clock
	mu    sync.Mutex
	state map[string]bucket
	swept time.Time
}

type bucket struct {
	tokens float64
	at     time.Time
}

// NewTokenBucket creates a TokenBucket. A nil clock uses time.Now.
func NewTokenBucket(cfg Config, now Clock) *TokenBucket {
	if now == nil {
		now = time.Now
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucket{cfg: cfg, now: now, state: make(map[string]bucket)}
}

// Allow takes one token from the bucket of key. Unknown keys are refused
// while the table is full even after idle buckets were evicted.
func (l *TokenBucket) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cfg.TTL > 0 && now.Sub(l.swept) >= l.cfg.TTL {
		l.evictIdle(now)
	}

	b, ok := l.state[key]
	switch {
	case !ok:
		if l.full() {
			l.evictIdle(now)
			if l.full() {
				return false
			}
		}
		b = bucket{tokens: float64(l.cfg.Burst), at: now}
	case now.After(b.at):
		b.tokens = min(float64(l.cfg.Burst), b.tokens+now.Sub(b.at).Seconds()*l.cfg.Rate)
		b.at = now
	}

	allowed := b.tokens >= 1
	if allowed {
		b.tokens--
	}
	l.state[key] = b
	return allowed
}

// Len returns the number of tracked keys.
func (l *TokenBucket) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.state)
}

func (l *TokenBucket) full() bool {
	return l.cfg.MaxBuckets > 0 && len(l.state) >= l.cfg.MaxBuckets
}

func (l *TokenBucket) evictIdle(now time.Time) {
	l.swept = now
	if l.cfg.TTL <= 0 {
		return
	}
	for k, b := range l.state {
		if now.Sub(b.at) > l.cfg.TTL {
			delete(l.state, k)
		}
	}
}
