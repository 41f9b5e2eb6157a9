package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"service-dispatch/internal/apperr"
)

// classify wraps a driver error for op, mapping constraint violations onto
// the domain sentinels.
func classify(op string, err error) error {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		switch pgerr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %s: %w", op, pgerr.ConstraintName, apperr.ErrConflict)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return fmt.Errorf("%s: %s: %w", op, pgerr.ConstraintName, apperr.ErrInvalid)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
