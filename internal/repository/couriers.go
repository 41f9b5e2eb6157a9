package repository

import (
	"context"
	"fmt"

	"service-dispatch/internal/domain"
)

// ListCouriers returns couriers ordered by id.
func (s *Store) ListCouriers(ctx context.Context) ([]domain.Courier, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, phone, vehicle, active FROM couriers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}
	defer rows.Close()
	out := make([]domain.Courier, 0)
	for rows.Next() {
		var c domain.Courier
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Vehicle, &c.Active); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetCourier returns courier by its ID, or nil, nil when it does not exist.
func (s *Store) GetCourier(ctx context.Context, id string) (*domain.Courier, error) {
	var c domain.Courier
	err := s.db.QueryRow(ctx,
		`SELECT id, name, phone, vehicle, active FROM couriers WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Vehicle, &c.Active)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %q: %w", id, err)
	}
	return &c, nil
}

// UpsertCourier inserts or replaces reference courier data.
func (s *Store) UpsertCourier(ctx context.Context, c domain.Courier) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO couriers (id, name, phone, vehicle, active)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (id) DO UPDATE
        SET name = EXCLUDED.name,
            phone = EXCLUDED.phone,
            vehicle = EXCLUDED.vehicle,
            active = EXCLUDED.active
    `, c.ID, c.Name, c.Phone, string(c.Vehicle), c.Active)
	if err != nil {
		return fmt.Errorf("upsert courier %q: %w", c.ID, err)
	}
	return nil
}
