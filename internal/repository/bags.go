package repository

import (
	"context"
	"fmt"

	"service-dispatch/internal/domain"
)

const bagColumns = `id, number, courier_id, order_ids, status, created_at`

// GetBag returns a bag by id, or nil, nil when it does not exist.
func (s *Store) GetBag(ctx context.Context, id string) (*domain.Bag, error) {
	var b domain.Bag
	err := s.db.QueryRow(ctx, `SELECT `+bagColumns+` FROM bags WHERE id = $1`, id).
		Scan(&b.ID, &b.Number, &b.CourierID, &b.OrderIDs, &b.Status, &b.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bag %q: %w", id, err)
	}
	return &b, nil
}

// ListBags returns bags oldest first. An empty courierID lists every bag.
func (s *Store) ListBags(ctx context.Context, courierID string) ([]domain.Bag, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+bagColumns+`
        FROM bags
        WHERE $1 = '' OR courier_id = $1
        ORDER BY created_at, number
    `, courierID)
	if err != nil {
		return nil, fmt.Errorf("list bags: %w", err)
	}
	defer rows.Close()
	out := make([]domain.Bag, 0)
	for rows.Next() {
		var b domain.Bag
		if err := rows.Scan(&b.ID, &b.Number, &b.CourierID, &b.OrderIDs, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// CountBags returns the number of stored bags.
func (s *Store) CountBags(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM bags`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bags: %w", err)
	}
	return n, nil
}
