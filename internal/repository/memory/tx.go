package memory

import (
	"context"
	"fmt"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/ports/handovertx"
)

// WithTx runs fn holding the store write lock. Writes are staged and applied
// only when fn returns nil, so a failed commit leaves the store untouched.
// fn must not call other Store methods.
func (s *Store) WithTx(ctx context.Context, fn func(tx handovertx.Repository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txRepo{s: s, staged: make(map[string]domain.Order)}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx.apply()
	return nil
}

type txRepo struct {
	s      *Store
	staged map[string]domain.Order
	order  []string
	bags   []domain.Bag
}

var _ handovertx.Repository = (*txRepo)(nil)

func (t *txRepo) GetOrderForUpdate(ctx context.Context, id string) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if o, ok := t.staged[id]; ok {
		c := o.Clone()
		return &c, nil
	}
	i, ok := t.s.orderIdx[id]
	if !ok {
		return nil, nil
	}
	c := t.s.orders[i].Clone()
	return &c, nil
}

func (t *txRepo) SaveOrder(ctx context.Context, o *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := t.s.orderIdx[o.ID]; !ok {
		return fmt.Errorf("save order %q: %w", o.ID, apperr.ErrNotFound)
	}
	if _, ok := t.staged[o.ID]; !ok {
		t.order = append(t.order, o.ID)
	}
	t.staged[o.ID] = o.Clone()
	return nil
}

func (t *txRepo) InsertBag(ctx context.Context, b *domain.Bag) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := t.s.bagIdx[b.ID]; ok {
		return fmt.Errorf("bag id %q: %w", b.ID, apperr.ErrConflict)
	}
	if _, ok := t.s.numbers[b.Number]; ok {
		return fmt.Errorf("bag number %q: %w", b.Number, apperr.ErrConflict)
	}
	for _, staged := range t.bags {
		if staged.ID == b.ID || staged.Number == b.Number {
			return fmt.Errorf("bag %q: %w", b.Number, apperr.ErrConflict)
		}
	}
	t.bags = append(t.bags, cloneBag(*b))
	return nil
}

func (t *txRepo) apply() {
	for _, id := range t.order {
		t.s.orders[t.s.orderIdx[id]] = t.staged[id]
	}
	for _, b := range t.bags {
		t.s.bagIdx[b.ID] = len(t.s.bags)
		t.s.numbers[b.Number] = b.ID
		t.s.bags = append(t.s.bags, b)
	}
}
