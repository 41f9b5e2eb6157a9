// Package sequence hands out bag numbers. Values are strictly increasing for
// the lifetime of a backend; gaps are allowed.
package sequence

import (
	"context"
	"sync/atomic"
)

// Memory is a process-local sequence.
type Memory struct {
	last atomic.Int64
}

// NewMemory returns a sequence whose first value is floor+1.
func NewMemory(floor int64) *Memory {
	m := &Memory{}
	m.last.Store(floor)
	return m
}

// Next returns the next value.
func (m *Memory) Next(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return m.last.Add(1), nil
}
