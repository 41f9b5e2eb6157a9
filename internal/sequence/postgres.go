package sequence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres draws values from the bag_number_seq database sequence.
type Postgres struct {
	db *pgxpool.Pool
}

// NewPostgres creates a Postgres sequence.
func NewPostgres(db *pgxpool.Pool) *Postgres { return &Postgres{db: db} }

// Next returns the next value.
func (p *Postgres) Next(ctx context.Context) (int64, error) {
	var n int64
	if err := p.db.QueryRow(ctx, `SELECT nextval('bag_number_seq')`).Scan(&n); err != nil {
		return 0, fmt.Errorf("nextval bag_number_seq: %w", err)
	}
	return n, nil
}
