package memory

import (
	"context"

	"service-dispatch/internal/domain"
)

// ListCouriers returns couriers in insertion order.
func (s *Store) ListCouriers(ctx context.Context) ([]domain.Courier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Courier, len(s.couriers))
	copy(out, s.couriers)
	return out, nil
}

// GetCourier returns a courier by id, or nil, nil when it does not exist.
func (s *Store) GetCourier(ctx context.Context, id string) (*domain.Courier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.courierIdx[id]
	if !ok {
		return nil, nil
	}
	c := s.couriers[i]
	return &c, nil
}

// UpsertCourier inserts or replaces reference courier data.
func (s *Store) UpsertCourier(ctx context.Context, c domain.Courier) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.courierIdx[c.ID]; ok {
		s.couriers[i] = c
		return nil
	}
	s.courierIdx[c.ID] = len(s.couriers)
	s.couriers = append(s.couriers, c)
	return nil
}
