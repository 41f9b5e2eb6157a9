package handover

import (
	"context"
	"fmt"
	"sync"
	"time"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/logx"
)

type entry struct {
	mu      sync.Mutex
	session *Session
	touched time.Time
}

// registry hosts live sessions by id. Each entry has its own lock so that
// actions on one session are serialized without blocking the others.
type registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func newRegistry() *registry {
	return &registry{entries: make(map[string]*entry)}
}

func (r *registry) add(s *Session, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[s.ID] = &entry{session: s, touched: now}
}

// acquire returns the entry locked. The caller must unlock it.
func (r *registry) acquire(id string, now time.Time) (*entry, error) {
	r.mu.Lock()
	e, ok := r.entries[id]
	if ok {
		e.touched = now
	}
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, apperr.ErrNotFound)
	}
	e.mu.Lock()
	return e, nil
}

func (r *registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// sweep drops sessions not touched since now-ttl and returns how many it dropped.
func (r *registry) sweep(now time.Time, ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, e := range r.entries {
		if now.Sub(e.touched) > ttl {
			delete(r.entries, id)
			n++
		}
	}
	return n
}

// RunSweeper drops idle sessions every interval until ctx is done.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep drops expired sessions once.
func (s *Service) Sweep() int {
	n := s.reg.sweep(s.now(), s.ttl)
	if n > 0 {
		s.metrics.Sessions.Sub(float64(n))
		s.logger.Info("handover sessions expired", logx.Int("count", n))
	}
	return n
}
