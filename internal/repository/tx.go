package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/ports/handovertx"
)

// WithTx opens a transaction and executes fn within it.
func (s *Store) WithTx(ctx context.Context, fn func(tx handovertx.Repository) error) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		return fn(&TxRepo{tx: tx})
	})
}

func (s *Store) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				panic(rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// TxRepo runs repository operations inside one transaction.
type TxRepo struct {
	tx pgx.Tx
}

var _ handovertx.Repository = (*TxRepo)(nil)

// GetOrderForUpdate locks the order row until the transaction ends.
func (r *TxRepo) GetOrderForUpdate(ctx context.Context, id string) (*domain.Order, error) {
	return getOrder(ctx, r.tx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
}

// SaveOrder writes back an order read with GetOrderForUpdate.
func (r *TxRepo) SaveOrder(ctx context.Context, o *domain.Order) error {
	return saveOrder(ctx, r.tx, o)
}

// InsertBag inserts a new bag.
func (r *TxRepo) InsertBag(ctx context.Context, b *domain.Bag) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO bags (`+bagColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, b.ID, b.Number, b.CourierID, b.OrderIDs, string(b.Status), b.CreatedAt)
	if err != nil {
		return classify(fmt.Sprintf("insert bag %q", b.Number), err)
	}
	return nil
}
