package handovertx

import (
	"context"

	"service-dispatch/internal/domain"
)

// Repository is the transactional view a handover commit works through.
// Nothing written through it is visible until the transaction commits.
type Repository interface {
	// GetOrderForUpdate returns nil, nil when the order does not exist.
	GetOrderForUpdate(ctx context.Context, id string) (*domain.Order, error)
	SaveOrder(ctx context.Context, o *domain.Order) error
	InsertBag(ctx context.Context, b *domain.Bag) error
}

// Runner is a transaction runner. fn's error rolls everything back.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
