package memory

import (
	"context"

	"service-dispatch/internal/domain"
)

// GetBag returns a bag by id, or nil, nil when it does not exist.
func (s *Store) GetBag(ctx context.Context, id string) (*domain.Bag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.bagIdx[id]
	if !ok {
		return nil, nil
	}
	b := cloneBag(s.bags[i])
	return &b, nil
}

// ListBags returns bags oldest first. An empty courierID lists every bag.
func (s *Store) ListBags(ctx context.Context, courierID string) ([]domain.Bag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Bag, 0, len(s.bags))
	for _, b := range s.bags {
		if courierID == "" || b.CourierID == courierID {
			out = append(out, cloneBag(b))
		}
	}
	return out, nil
}

// CountBags returns the number of stored bags.
func (s *Store) CountBags(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.bags)), nil
}

func cloneBag(b domain.Bag) domain.Bag {
	b.OrderIDs = append([]string(nil), b.OrderIDs...)
	return b
}
